// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"fmt"
	"reflect"

	"go.uber.org/fx"
)

// delayedFxInvocation delays the execution of a function until after the fx
// app has started: option() returns an fx.Invoke that merely captures the
// function's arguments from the app, and call() runs the function with the
// captured arguments.
//
// The function may take any set of fx-provided types and must return
// nothing or an error.
type delayedFxInvocation struct {
	fn       interface{}
	captured bool
	args     []reflect.Value
}

var errorInterface = reflect.TypeOf((*error)(nil)).Elem()

func newDelayedFxInvocation(fn interface{}) *delayedFxInvocation {
	return &delayedFxInvocation{fn: fn}
}

func (i *delayedFxInvocation) option() fx.Option {
	ftype := reflect.TypeOf(i.fn)
	if ftype == nil || ftype.Kind() != reflect.Func {
		return fx.Error(fmt.Errorf("expected a function, got %T", i.fn))
	}
	if ftype.NumOut() > 1 || (ftype.NumOut() == 1 && !ftype.Out(0).Implements(errorInterface)) {
		return fx.Error(fmt.Errorf("function %s must return nothing or an error", ftype))
	}

	// invoke a function with the same signature, minus the return value,
	// that only records its arguments
	argTypes := make([]reflect.Type, ftype.NumIn())
	for n := 0; n < ftype.NumIn(); n++ {
		argTypes[n] = ftype.In(n)
	}
	capture := reflect.MakeFunc(
		reflect.FuncOf(argTypes, nil, false),
		func(args []reflect.Value) []reflect.Value {
			i.args = args
			i.captured = true
			return nil
		})
	return fx.Invoke(capture.Interface())
}

func (i *delayedFxInvocation) call() error {
	if !i.captured {
		return fmt.Errorf("fx app did not provide arguments for %T", i.fn)
	}
	out := reflect.ValueOf(i.fn).Call(i.args)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}
