package response

// Resp is the envelope of every reply. Msg doubles as the user-facing notice.
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// New never leaves data null.
func New(code int, msg string, data any) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data any) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Notice is a success carrying a message for the user.
func Notice(msg string, data any) Resp {
	if msg == "" {
		msg = CodeMsgMap[CodeOK]
	}
	return New(CodeOK, msg, data)
}

func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}
