// Package status defines the HTTP-like status codes used by response models
// and application errors.
package status

import "strconv"

// Code is an HTTP-like status code. The numeric values are the standard HTTP
// status numbers so that a host controller can write them to the wire as-is.
type Code int

const (
	OK                  Code = 200
	Created             Code = 201
	NoContent           Code = 204
	BadRequest          Code = 400
	Unauthorized        Code = 401
	Forbidden           Code = 403
	NotFound            Code = 404
	Conflict            Code = 409
	UnprocessableEntity Code = 422
	InternalServerError Code = 500
)

// Int returns the numeric value of the code.
func (c Code) Int() int {
	return int(c)
}

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool {
	switch c {
	case OK, Created, NoContent, BadRequest, Unauthorized,
		Forbidden, NotFound, Conflict, UnprocessableEntity, InternalServerError:
		return true
	}
	return false
}

// String returns the canonical reason phrase for the code, or its decimal
// value for codes outside the declared set.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case NoContent:
		return "No Content"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case Conflict:
		return "Conflict"
	case UnprocessableEntity:
		return "Unprocessable Entity"
	case InternalServerError:
		return "Internal Server Error"
	}
	return strconv.Itoa(int(c))
}
