package montecarlo

// Demo identifies one of the two programs.  Each has its own output file and flag set.
type Demo int

const (
	Inverse Demo = iota + 1
	Integral
)

func (d Demo) String() string {
	switch d {
	case Inverse:
		return "inverse"
	case Integral:
		return "mcintegral"
	default:
		return "unknown"
	}
}

// DefaultOutput is the image file written into the output directory when no output option is set
func (d Demo) DefaultOutput() string {
	switch d {
	case Inverse:
		return "inverse_method.png"
	case Integral:
		return "mcintegral.png"
	default:
		return ""
	}
}
