package api

import (
	"github.com/Zero-1729/volt-sub001/modules/display/api/httphandler"
	"github.com/Zero-1729/volt-sub001/modules/display/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}
