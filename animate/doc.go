// Package animate replays a northwest-corner step log frame by frame.
//
// Each frame shows the step header, the partially filled table with the
// newly set cell highlighted, and a fixed-width progress bar:
//
//	Step 2/3: S2 -> C1 = 5
//	Supplier/Consumer | C1  | C2 | Supply
//	...
//	Progress: [####################..........] 66%
//
// Pacing between frames goes through the Pacer interface. Production code
// uses SleepPacer; tests use NopPacer so a full replay runs instantly.
// Cancelling the context stops the replay at the next frame boundary.
//
// The Animator keeps its own zero grid and never touches the Plan it replays.
package animate
