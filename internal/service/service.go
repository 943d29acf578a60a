// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls the repositories and upstream
// provider clients to carry them out.
package service
