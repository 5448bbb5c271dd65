// Package models contains GORM persistence models that map to database tables.
// Domain types stay free of ORM tags; each model converts to and from its
// domain counterpart with ToDomain and FromDomain.
//
// Structure:
// - catalog.go: products
// - identity.go: tellers
// - sales.go: purchase rows and the aggregate read rows
package models
