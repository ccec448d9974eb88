package mouse

// wheelDelta returns the one-axis delta of a scroll button. Only vertical
// ticks move the wheel axis; scrolling down, towards the user, is
// positive unless the configuration inverts it.
func wheelDelta(b Button, config Config) (float64, bool) {
	var delta float64
	switch b {
	case ButtonScrollDown:
		delta = config.WheelStep
	case ButtonScrollUp:
		delta = -config.WheelStep
	default:
		return 0, false
	}
	if config.InvertWheel {
		delta = -delta
	}
	return delta, true
}
