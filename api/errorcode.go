package api

import "github.com/oncurve/oncurve-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrProjectNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorProjectNotFound = errorJSON(1100)
)

// ErrorResponse is the response when errors happen
type ErrorResponse struct {
	Error struct {
		Code    int64  `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorJSON(code int64) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code

	if message, ok := errorMessageMap[code]; ok {
		resp.Error.Message = message
	} else {
		resp.Error.Message = "unknown"
	}

	return resp
}
