// Package model declares example beans. The generated regions are kept up to
// date with:
//
//	go run goa.design/beans/cmd/beangen generate .
package model

//go:generate go run goa.design/beans/cmd/beangen generate .
