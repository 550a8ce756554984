// Package handler provides HTTP request handlers for the Shows API.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service it calls
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to status codes by MapServiceError
//
// # Response Format
//
// Every response, success or failure, is the same envelope:
//
//	{"code": 200, "success": true, "message": "Show created", "result": {...}}
//
// success is true exactly when code is in [200, 300). result is a JSON object
// or null; NewResponse rejects anything else with ErrResultNotObject and
// WriteResponse turns that into a 500 envelope.
//
// # Example Usage
//
//	shows := NewShowHandler(showService)
//	mux.HandleFunc("GET /shows", shows.List)
//	mux.HandleFunc("POST /shows", shows.Create)
package handler
