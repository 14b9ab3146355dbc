// Package hook implements the synchronous, single-threaded multi-observer
// channels used throughout the vis tree and the reconciler.
//
// A Hook (or ChangeHook) is a typed event with many independent
// subscribers. Subscribing returns a Handle; unhooking a handle removes
// exactly that registration and is idempotent. Triggering a hook invokes
// every callback registered at the time Trigger was called, in
// registration order — callbacks added during the trigger do not receive
// that trigger, and callbacks removed during the trigger are still invoked
// if they had not yet been visited.
package hook
