package pages

import (
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ProbeResult is the outcome of looking for an element.
// Not finding an element is an expected result, never an error.
type ProbeResult int

const (
	// ProbeAbsent means no element matched, or none did within the probe bound.
	ProbeAbsent ProbeResult = iota
	// ProbeHidden means an element is attached to the DOM but not visible.
	ProbeHidden
	// ProbeVisible means an element is visible.
	ProbeVisible
)

func (r ProbeResult) String() string {
	switch r {
	case ProbeVisible:
		return "visible"
	case ProbeHidden:
		return "hidden"
	default:
		return "absent"
	}
}

// Found reports whether an element exists, visible or not.
func (r ProbeResult) Found() bool {
	return r != ProbeAbsent
}

// probeVisible waits up to timeout for the first element of loc to become visible.
// A timeout yields ProbeAbsent; any other driver error is returned.
func probeVisible(loc playwright.Locator, timeout time.Duration) (ProbeResult, error) {
	err := loc.First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: ms(timeout),
	})
	if err == nil {
		return ProbeVisible, nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return ProbeAbsent, nil
	}
	return ProbeAbsent, err
}

// probeNow checks the current state of loc without waiting:
// visibility first, existence second.
func probeNow(loc playwright.Locator) (ProbeResult, error) {
	visible, err := loc.First().IsVisible()
	if err != nil {
		return ProbeAbsent, err
	}
	if visible {
		return ProbeVisible, nil
	}

	count, err := loc.Count()
	if err != nil {
		return ProbeAbsent, err
	}
	if count > 0 {
		return ProbeHidden, nil
	}
	return ProbeAbsent, nil
}
