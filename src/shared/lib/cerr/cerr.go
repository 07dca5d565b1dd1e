package cerr

import (
	"github.com/cockroachdb/errors"
)

type F map[string]any

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

// ContextualError carries the structured fields accumulated while the error
// travelled up the stack, so they can be logged in one place.
type ContextualError struct {
	Context Context
	err     error
}

func (c ContextualError) Error() string {
	return c.err.Error()
}

func (c ContextualError) Unwrap() error {
	return c.err
}

type Context struct {
	ContextFields F
}

type Wrapper struct {
	context Context
	cause   error
}

func Field(key string, value any) Context {
	return Context{}.Field(key, value)
}

func Fields(fields F) Context {
	return Context{}.Fields(fields)
}

func Wrap(err error) Wrapper {
	return Context{}.Wrap(err)
}

func Error(msg string) error {
	return Context{}.Error(msg)
}

func (c Context) Field(key string, value any) Context {
	return c.Fields(F{key: value})
}

func (c Context) Fields(fields F) Context {
	merged := F{}
	for key, value := range c.ContextFields {
		merged[key] = value
	}

	for key, value := range fields {
		merged[key] = value
	}

	return Context{ContextFields: merged}
}

func (c Context) Wrap(err error) Wrapper {
	return Wrapper{
		context: c,
		cause:   err,
	}
}

func (c Context) Error(msg string) error {
	return ContextualError{
		Context: c,
		err:     errors.NewWithDepth(1, msg),
	}
}

func (w Wrapper) Error(msg string) error {
	if w.cause == nil {
		return w.context.Error(msg)
	}

	ctx := w.context
	var inner ContextualError
	if errors.As(w.cause, &inner) {
		// fields closer to the failure win over the ones added further up
		ctx = ctx.Fields(inner.Context.ContextFields)
	}

	return ContextualError{
		Context: ctx,
		err:     errors.WrapWithDepth(1, w.cause, msg),
	}
}
