// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required
// fields or email formats) defined in struct tags and flattens
// validation failures into the messages the client contract promises:
// "Invalid JSON body" for malformed payloads and "Missing required
// fields: ..." naming every absent field by its JSON name.
package validation
