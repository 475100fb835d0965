package htmx

// SwapStrategy defines how HTMX swaps content into the target element.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML"
	SwapOuterHTML SwapStrategy = "outerHTML"
	SwapBeforeEnd SwapStrategy = "beforeend"
	SwapNone      SwapStrategy = "none"
)
