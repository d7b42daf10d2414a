package riichi

import "github.com/sirupsen/logrus"

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger 注入宿主日志器, 引擎仅在不变量被破坏时输出
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}
