package chat

// Op identifies one of the assistant's tools.
type Op int

const (
	OpComparePrices Op = iota
	OpGetCarDetails
	OpListAvailableCars
	OpWhyBuyFromUs
)

// String returns the tool name used for LLM routing and logging.
func (o Op) String() string {
	switch o {
	case OpComparePrices:
		return "ComparePrices"
	case OpGetCarDetails:
		return "GetCarDetails"
	case OpListAvailableCars:
		return "ListAvailableCars"
	case OpWhyBuyFromUs:
		return "WhyBuyFromUs"
	default:
		return "Unknown"
	}
}

// toolNames lists every routable tool, in Op order.
var toolNames = []string{
	OpComparePrices.String(),
	OpGetCarDetails.String(),
	OpListAvailableCars.String(),
	OpWhyBuyFromUs.String(),
}

// Command is a routed user request: which tool to run and for which car.
// CarName carries the user's raw phrasing; each tool resolves it against
// the catalog itself.
type Command struct {
	Op      Op
	CarName string
}
