package eventmodels

import "errors"

var InvalidRequestErr = errors.New("invalid quote request")
var NotFoundErr = errors.New("underlying not found")
var UnsupportedProductErr = errors.New("unsupported product type")
var InternalFaultErr = errors.New("quote synthesis fault")
