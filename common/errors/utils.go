package errors

// RecoverErrorPanic recovers a panic carrying an error. If one is
// recovered, it sets the panic content to pErr and resets the return
// value behind pRet to its zero value. Useful when wrapping asserting
// parsers into error-returning functions. Panics that do not carry an
// error are reraised.
func RecoverErrorPanic[T any](pErr *error, pRet *T) {
	if r := recover(); r != nil {
		panicErr, ok := r.(error)
		if !ok {
			// Reraise.
			panic(r)
		}
		*pErr = panicErr
		var zero T
		*pRet = zero
	}
}
