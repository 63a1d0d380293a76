// Package resources keeps an observable list of records in sync with a CRUD
// repository.
//
// Every operation publishes a fresh ListState; published values are never
// modified afterwards, so observers may compare or retain them freely.
// Failed operations are not retried: the last error stays in ErrorMessage
// and ErrorKind until ClearError or the next FetchAll.
package resources

import "github.com/dmitrijs2005/userdesk/internal/client/client"

// Identifiable records have a server-assigned identity.
type Identifiable interface {
	GetID() int64
}

// ListState is an immutable snapshot. ErrorMessage is "<Kind>: <message>" and
// is empty when there is no error to show.
type ListState[T Identifiable] struct {
	Items        []T
	IsLoading    bool
	ErrorMessage string
	ErrorKind    client.Kind
}

func (s ListState[T]) HasError() bool {
	return s.ErrorMessage != ""
}
