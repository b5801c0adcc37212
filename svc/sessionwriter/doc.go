// Package sessionwriter implements the write side of the sticky region
// protocol. It signs users in by minting a short-lived signed session cookie
// together with a long-lived unsigned region cookie scoped to the parent
// domain, and it can expire either cookie independently.
//
// Every instance represents exactly one region. It only ever writes its own
// region name into the region cookie; choosing between regions is the region
// router's job.
//
// Routes:
//
//	GET  /        current session and region cookie state
//	POST /signin  set the session and region cookies
//	POST /signout expire the session cookie, keep the region cookie
//	POST /nix     expire the region cookie, keep the session cookie
//	GET  /healthz liveness probe
package sessionwriter
