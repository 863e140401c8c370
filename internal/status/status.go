package status

// Status is one entry of the fixed response code table. Every API response
// carries exactly one of these codes.
type Status struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	Succeed         = Status{Code: "000", Message: "succeed"}
	DefaultFailed   = Status{Code: "001", Message: "failed"}
	MissingArgument = Status{Code: "002", Message: "missing argument"}
	SomethingEmpty  = Status{Code: "003", Message: "something is empty"}
	UserExists      = Status{Code: "004", Message: "user already exists"}
	UserNotFound    = Status{Code: "005", Message: "user does not exist"}
	LoginFailed     = Status{Code: "006", Message: "login failed"}
)

// Envelope is the wire shape of every response. Data is omitted unless the
// response carries a payload.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK builds a success envelope carrying data.
func OK(data interface{}) Envelope {
	return Envelope{Code: Succeed.Code, Message: Succeed.Message, Data: data}
}

// OKMessage builds a success envelope with a custom message and no data.
func OKMessage(message string) Envelope {
	return Envelope{Code: Succeed.Code, Message: message}
}

// Fail builds a failure envelope for s.
func Fail(s Status) Envelope {
	return Envelope{Code: s.Code, Message: s.Message}
}
