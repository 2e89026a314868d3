package navigation

import "strings"

// Item is a menu entry. Groups carry children and no path.
type Item struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Children []Item `json:"children,omitempty" yaml:"children,omitempty"`
}

func group(name string, children ...Item) Item {
	return Item{Name: name, Children: children}
}

func link(name, path string) Item {
	return Item{Name: name, Path: path}
}

var menu = []Item{
	group("FM Module",
		link("Service Desk", "/tickets"),
		link("Asset", "/assets"),
		link("Soft Services", "/services"),
		link("Inventory", "/materials"),
		link("Supplier/Vendor", "/suppliers"),
		link("Audit", "/audit"),
		link("Mail Room", "/mail-room"),
	),
	group("Safety",
		link("Incident", "/incidents"),
		link("Permit", "/permit"),
	),
	group("Security",
		link("Passes", "/passes"),
		link("Patrolling", "/patrolling"),
	),
	group("Value Added Services",
		link("Meetings", "/meeting"),
		link("Parking", "/parking"),
		link("Transportation", "/transportation"),
		link("Food & Beverage", "/food-beverage"),
		link("Doctor Appointment", "/doctor-appointment"),
		link("Fitness", "/fitness"),
		link("Pantry", "/pantry"),
	),
	group("Finance",
		link("Bills", "/bills"),
		link("PO", "/purchase-order"),
		link("WO", "/work-order"),
		link("GRN", "/grn"),
		link("GDN", "/gdn"),
		link("LOI", "/letter-of-indent"),
		link("Material PR", "/material-pr"),
		link("Service PR", "/service-pr"),
		link("Accounting", "/accounting"),
	),
	group("CRM",
		link("Business", "/business"),
		link("Insights", "/insights"),
		link("CAR", "/car"),
	),
	group("Utility",
		link("Project Management", "/project-management"),
		link("Task Management", "/Task-management"),
		link("Calendar", "/calendar"),
		link("Compliance", "/compliance"),
	),
	group("Booking Management",
		link("Facility Booking", "/booking"),
		link("Hotel Request", "/admin/booking-request/hotel-request"),
		link("Flight Request", "/admin/booking-request/flight-request"),
		link("Cab Request", "/admin/booking-request/cab-request"),
	),
	group("Transitioning",
		link("Fit Out", "/fit-out"),
	),
	link("Market Place", "/market-place"),
	link("Employee WorkSpace", "/employee/workspace"),
}

// Menu returns a copy of the top navigation tree.
func Menu() []Item {
	return cloneItems(menu)
}

// IsActive reports whether current starts with path. Blank paths are never
// active.
func IsActive(current, path string) bool {
	if path == "" {
		return false
	}
	return strings.HasPrefix(current, path)
}

// IsParentActive reports whether item or any descendant is active.
func IsParentActive(current string, item Item) bool {
	if IsActive(current, item.Path) {
		return true
	}
	for _, child := range item.Children {
		if IsParentActive(current, child) {
			return true
		}
	}
	return false
}

// ActiveTrail returns the names from the top-level entry down to the first
// active leaf, or nil when nothing matches.
func ActiveTrail(current string) []string {
	for _, item := range menu {
		if trail := trailFor(current, item); trail != nil {
			return trail
		}
	}
	return nil
}

func trailFor(current string, item Item) []string {
	for _, child := range item.Children {
		if trail := trailFor(current, child); trail != nil {
			return append([]string{item.Name}, trail...)
		}
	}
	if IsActive(current, item.Path) {
		return []string{item.Name}
	}
	return nil
}

// Find returns the item whose path equals path.
func Find(path string) (Item, bool) {
	for _, item := range Flatten() {
		if item.Path == path {
			return item, true
		}
	}
	return Item{}, false
}

// Flatten lists every linked item depth-first.
func Flatten() []Item {
	var out []Item
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, item := range items {
			if item.Path != "" {
				out = append(out, Item{Name: item.Name, Path: item.Path})
			}
			walk(item.Children)
		}
	}
	walk(menu)
	return out
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = Item{Name: item.Name, Path: item.Path, Children: cloneItems(item.Children)}
	}
	return out
}
