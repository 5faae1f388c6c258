package dashboard

import (
	"errors"
	"fmt"

	"go-restaurant/api"
)

// Kind classifies a failed operation for the user.
type Kind int

const (
	KindOther Kind = iota
	KindNetwork
	KindServer
	KindMismatch
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindMismatch:
		return "mismatch"
	default:
		return "other"
	}
}

// Op names the dashboard operation a notification is about.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpToggle Op = "toggle"
)

// Notification is a failure the user should see.
type Notification struct {
	Op   Op
	Kind Kind
	Err  error
}

func (n Notification) String() string {
	return fmt.Sprintf("%s failed (%s): %v", n.Op, n.Kind, n.Err)
}

// Notifier receives failures of dashboard operations.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type discard struct{}

func (discard) Notify(Notification) {}

func classify(err error) Kind {
	var (
		ne *api.NetworkError
		se *api.ServerError
		me *MismatchError
	)
	switch {
	case errors.As(err, &ne):
		return KindNetwork
	case errors.As(err, &se):
		return KindServer
	case errors.As(err, &me):
		return KindMismatch
	default:
		return KindOther
	}
}

func newNotification(op Op, err error) Notification {
	return Notification{Op: op, Kind: classify(err), Err: err}
}
