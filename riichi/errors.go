package riichi

import "errors"

var (
	// ErrIllegalAction 当前状态下不允许的操作
	ErrIllegalAction = errors.New("riichi: illegal action")
	// ErrMalformedInput 输入数据不合法
	ErrMalformedInput = errors.New("riichi: malformed input")
	// ErrInvariant 内部状态被破坏
	ErrInvariant = errors.New("riichi: invariant violation")
)
