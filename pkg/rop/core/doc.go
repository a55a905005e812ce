// Package core contains the asynchronous plumbing the rop packages are built
// on: a settle-once Future, the Eventual sum of an immediate value or a
// future one, the continuation driver that derives one future from another,
// channel adapters, and Guard, the scoped recover block used for best-effort
// side effects. It does not know about Result; packages rop and mass build the
// success/failure algebra on top of it.
package core
