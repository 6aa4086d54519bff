// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package threadgroup provides a small primitive for spawning a batch of concurrent
tasks and joining all of them at once, collecting each task's outcome without the
caller having to manage individual goroutines.

A group is created empty, grows through Spawn, and is drained by one of the join
methods.  JoinAll always waits for every pending task and reports every outcome,
in spawn order, regardless of individual failures.  A panic inside a task is
recovered at the goroutine boundary and surfaces as a Failure outcome rather
than crashing the process.

A group is owned by a single goroutine.  Calling Spawn or any join method on the
same group from multiple goroutines concurrently requires external synchronization.
The group is only a collection of handles, not a communication channel: a task
must not reach back into the group that spawned it.
*/
package threadgroup
