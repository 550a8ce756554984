// Package model defines the domain types of the Shows API.
//
// # Entities
//
//   - Show: a tracked TV series with a name and the number of episodes seen
//
// # Requests
//
// Request types decode JSON bodies and validate themselves:
//
//	var req model.CreateShowRequest
//	if errs := req.Validate(); len(errs) > 0 {
//	    // errs[0].Message is reported to the client
//	}
//
// CreateShowRequest uses pointer fields so a missing key is distinguishable
// from a zero value. UpdateShowRequest is a partial update: nil fields are
// left untouched.
//
// # Errors
//
// APIError carries the HTTP status and message that end up in the response
// envelope. FieldError describes a single invalid field.
package model
