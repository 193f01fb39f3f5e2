// Package pipeline runs the championship demonstration as a sequence of steps.
//
// A run registers the participants, classifies the players into bonus tiers
// and renders one or more reports. Each stage is implemented as a Step that
// receives the shared Championship and may read or fill it.
//
// Design decision: We use a pipeline of injected steps instead of a single
// function with hardwired collaborators because:
// 1. The registry, classifier and report generators are passed in explicitly
// 2. It provides consistent logging across steps
// 3. It supports cancellation via context between steps
//
// Steps always run sequentially on the calling goroutine.
package pipeline
