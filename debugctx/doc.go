/*
Package debugctx creates OpenGL debug contexts that share object namespaces
with an application's existing context.

Creation is gated by the environment. Unless GLF_ENABLE_DEBUG_OUTPUT is set to
a true value, a Context is inert: nothing is created and MakeCurrent does
nothing. GLF_ENABLE_CORE_PROFILE requests core profile visuals.

Failing to obtain a debug context never affects the host application. All
failures are reported to the package logger (see SetLogger) and leave the
Context inert; Status tells what happened.
*/
package debugctx
