package reports

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownReport is returned for report ids outside Reports().
var ErrUnknownReport = errors.New("reports: unknown report")

// ChartKind selects the echarts renderer.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartPie  ChartKind = "pie"
)

// Point is one labeled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is a named run of points sharing a legend entry.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Chart is one visualization inside a report.
type Chart struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Kind   ChartKind `json:"kind"`
	Series []Series  `json:"series"`
}

// Labels returns the x axis labels taken from the longest series.
func (c Chart) Labels() []string {
	var longest []Point
	for _, s := range c.Series {
		if len(s.Points) > len(longest) {
			longest = s.Points
		}
	}
	out := make([]string, len(longest))
	for i, p := range longest {
		out[i] = p.Label
		if out[i] == "" {
			out[i] = fmt.Sprintf("Item %d", i+1)
		}
	}
	return out
}

// SummaryCard is a headline figure shown above the charts.
type SummaryCard struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	SubText    string `json:"sub_text,omitempty"`
	Comparison string `json:"comparison,omitempty"`
	Positive   bool   `json:"positive,omitempty"`
}

// Report is one tab of the food & beverage reports page.
type Report struct {
	ID      string        `json:"id"`
	Label   string        `json:"label"`
	Summary []SummaryCard `json:"summary"`
	Charts  []Chart       `json:"charts"`
}

// Chart returns the chart with id.
func (r Report) Chart(id string) (Chart, bool) {
	for _, c := range r.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return Chart{}, false
}

// Report ids in tab order.
const (
	ReportSales     = "sales"
	ReportFinancial = "financial"
	ReportInventory = "inventory"
	ReportItems     = "items"
	ReportStaff     = "staff"
)

// DateRanges and Periods are the selector options of the reports page.
var (
	DateRanges = []string{"Today", "Yesterday", "Last 7 Days", "Last 30 Days", "This Month", "Last Month", "Custom Range"}
	Periods    = []string{"December 2024", "November 2024", "October 2024", "This Quarter", "Last Quarter", "This Year"}
)

// Reports returns every report in tab order.
func Reports() []Report {
	return []Report{salesReport(), financialReport(), inventoryReport(), itemsReport(), staffReport()}
}

// Lookup finds a report by id, case-insensitively.
func Lookup(id string) (Report, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, r := range Reports() {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, fmt.Errorf("%w: %q", ErrUnknownReport, id)
}

type labeled struct {
	label string
	value float64
}

func series(name string, rows ...labeled) Series {
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.label, Value: r.value}
	}
	return Series{Name: name, Points: points}
}

func salesReport() Report {
	return Report{
		ID:    ReportSales,
		Label: "Sales",
		Summary: []SummaryCard{
			{Label: "Total Sales", Value: "₹4,56,780", SubText: "Dec 1-18, 2024", Comparison: "+18%", Positive: true},
			{Label: "Total Orders", Value: "1,234", SubText: "68 orders/day", Comparison: "+12%", Positive: true},
			{Label: "Avg Order Value", Value: "₹370", SubText: "₹150 - ₹2,500", Comparison: "+5%", Positive: true},
			{Label: "Peak Day", Value: "Saturday, Dec 14", SubText: "₹35,680 | 96 orders"},
		},
		Charts: []Chart{
			{ID: "daily", Title: "Daily Sales", Kind: ChartLine, Series: []Series{series("Sales",
				labeled{"Dec 1", 22000}, labeled{"Dec 2", 19500}, labeled{"Dec 3", 21800},
				labeled{"Dec 4", 23400}, labeled{"Dec 5", 25600}, labeled{"Dec 6", 28900},
				labeled{"Dec 7", 31200}, labeled{"Dec 8", 24800}, labeled{"Dec 9", 22300},
				labeled{"Dec 10", 26700}, labeled{"Dec 11", 25900}, labeled{"Dec 12", 27400},
				labeled{"Dec 13", 29100}, labeled{"Dec 14", 35680}, labeled{"Dec 15", 33200},
				labeled{"Dec 16", 28500}, labeled{"Dec 17", 26900}, labeled{"Dec 18", 25450},
			)}},
			{ID: "hourly", Title: "Hourly Sales", Kind: ChartBar, Series: []Series{series("Sales",
				labeled{"9 AM", 800}, labeled{"10 AM", 1200}, labeled{"11 AM", 1800},
				labeled{"12 PM", 2400}, labeled{"1 PM", 2850}, labeled{"2 PM", 2600},
				labeled{"3 PM", 1400}, labeled{"4 PM", 800}, labeled{"5 PM", 1600},
				labeled{"6 PM", 2200}, labeled{"7 PM", 2800}, labeled{"8 PM", 2400},
				labeled{"9 PM", 1800}, labeled{"10 PM", 1200},
			)}},
			{ID: "by_type", Title: "Sales by Order Type", Kind: ChartPie, Series: []Series{series("Order Type",
				labeled{"Dine-in", 250000}, labeled{"Delivery", 150000}, labeled{"Takeaway", 56780},
			)}},
			{ID: "payment_methods", Title: "Payment Methods", Kind: ChartPie, Series: []Series{series("Payment",
				labeled{"Cash", 180000}, labeled{"Card", 150000}, labeled{"UPI", 126780},
			)}},
		},
	}
}

func financialReport() Report {
	return Report{
		ID:    ReportFinancial,
		Label: "Financial",
		Summary: []SummaryCard{
			{Label: "Revenue", Value: "₹4,56,780", Comparison: "+11%", Positive: true},
			{Label: "Expenses", Value: "₹3,69,000", Comparison: "+15%"},
			{Label: "Net Profit", Value: "₹87,780", Comparison: "-5%"},
			{Label: "Profit Margin", Value: "19.2%", Comparison: "-3.1%"},
		},
		Charts: []Chart{
			{ID: "income", Title: "Income", Kind: ChartPie, Series: []Series{series("Income",
				labeled{"Dine-in", 250000}, labeled{"Delivery", 150000}, labeled{"Takeaway", 56780},
			)}},
			{ID: "cogs", Title: "Cost of Goods Sold", Kind: ChartBar, Series: []Series{series("COGS",
				labeled{"Ingredients", 150000}, labeled{"Packaging", 8000},
			)}},
			{ID: "operating_expenses", Title: "Operating Expenses", Kind: ChartBar, Series: []Series{series("Expenses",
				labeled{"Staff Salaries", 80000}, labeled{"Rent", 50000}, labeled{"Electricity", 15000},
				labeled{"Water", 3000}, labeled{"Gas", 8000}, labeled{"Maintenance", 5000},
				labeled{"Marketing", 10000}, labeled{"Delivery Charges", 12000},
				labeled{"Aggregator Commission", 18000}, labeled{"Miscellaneous", 10000},
			)}},
			{ID: "monthly_comparison", Title: "Monthly Comparison", Kind: ChartBar, Series: []Series{
				series("Revenue", labeled{"Oct", 345000}, labeled{"Nov", 412000}, labeled{"Dec", 456780}),
				series("Expenses", labeled{"Oct", 280000}, labeled{"Nov", 320000}, labeled{"Dec", 369000}),
				series("Net Profit", labeled{"Oct", 65000}, labeled{"Nov", 92000}, labeled{"Dec", 87780}),
			}},
		},
	}
}

func inventoryReport() Report {
	return Report{
		ID:    ReportInventory,
		Label: "Inventory",
		Summary: []SummaryCard{
			{Label: "Total Inventory Value", Value: "₹2,45,680", SubText: "27 items in stock"},
			{Label: "Items Below Min Stock", Value: "18 items", SubText: "67% - Attention needed"},
			{Label: "Out of Stock", Value: "0 items", SubText: "All stocked"},
			{Label: "Total Wastage", Value: "₹4,560", SubText: "1% of inventory"},
		},
		Charts: []Chart{
			{ID: "stock_status", Title: "Stock Status", Kind: ChartPie, Series: []Series{series("Items",
				labeled{"Good Stock", 4}, labeled{"Low Stock", 18}, labeled{"Critical", 5}, labeled{"Out of Stock", 0},
			)}},
			{ID: "category_value", Title: "Stock Value by Category", Kind: ChartPie, Series: []Series{series("Value",
				labeled{"Proteins", 85000}, labeled{"Grains", 45000}, labeled{"Vegetables", 35000},
				labeled{"Dairy", 40000}, labeled{"Spices", 25000}, labeled{"Others", 15680},
			)}},
			{ID: "top_consumed", Title: "Top Consumed Items", Kind: ChartBar, Series: []Series{series("Cost",
				labeled{"Rice (Basmati)", 12000}, labeled{"Chicken (Raw)", 30000}, labeled{"Onions", 4000},
				labeled{"Paneer", 24000}, labeled{"Tomatoes", 4750},
			)}},
			{ID: "wastage", Title: "Wastage", Kind: ChartBar, Series: []Series{series("Cost",
				labeled{"Milk", 300}, labeled{"Tomatoes", 400}, labeled{"Paneer", 600},
				labeled{"Chicken", 750}, labeled{"Vegetables", 500},
			)}},
		},
	}
}

func itemsReport() Report {
	return Report{
		ID:    ReportItems,
		Label: "Items",
		Summary: []SummaryCard{
			{Label: "Total Menu Items", Value: "32 active", SubText: "4 inactive items"},
			{Label: "Total Orders", Value: "1,234", SubText: "3,567 units sold"},
			{Label: "Avg Items/Order", Value: "2.9 items", SubText: "Range: 1-12 items"},
			{Label: "Revenue per Item", Value: "₹142", SubText: "per item sold"},
		},
		Charts: []Chart{
			{ID: "best_sellers", Title: "Best Sellers", Kind: ChartBar, Series: []Series{series("Orders",
				labeled{"Butter Chicken", 456}, labeled{"Paneer Tikka", 398}, labeled{"Veg Biryani", 345},
				labeled{"Dal Makhani", 289}, labeled{"Naan", 267}, labeled{"Cold Coffee", 234},
				labeled{"Tandoori Roti", 198}, labeled{"Paneer Kabab", 187}, labeled{"Chicken Biryani", 156},
				labeled{"Gulab Jamun", 145},
			)}},
			{ID: "slow_movers", Title: "Slow Movers", Kind: ChartBar, Series: []Series{series("Orders",
				labeled{"Fish Curry", 12}, labeled{"Pasta", 18}, labeled{"Mutton Rogan Josh", 15},
				labeled{"Filter Coffee", 22}, labeled{"Gajar Halwa", 19},
			)}},
			{ID: "category_revenue", Title: "Category Performance", Kind: ChartPie, Series: []Series{series("Revenue",
				labeled{"Starters", 289000}, labeled{"Main Course", 356000}, labeled{"Beverages", 68040},
				labeled{"Desserts", 26010}, labeled{"Breads", 27120},
			)}},
			{ID: "profitability", Title: "Item Profitability", Kind: ChartBar, Series: []Series{
				series("Price", labeled{"Cold Coffee", 120}, labeled{"Naan", 50}, labeled{"Dal Makhani", 180}, labeled{"Paneer Tikka", 250}, labeled{"Gulab Jamun", 80}),
				series("Cost", labeled{"Cold Coffee", 35}, labeled{"Naan", 12}, labeled{"Dal Makhani", 45}, labeled{"Paneer Tikka", 80}, labeled{"Gulab Jamun", 25}),
				series("Profit", labeled{"Cold Coffee", 85}, labeled{"Naan", 38}, labeled{"Dal Makhani", 135}, labeled{"Paneer Tikka", 170}, labeled{"Gulab Jamun", 55}),
			}},
		},
	}
}

func staffReport() Report {
	return Report{
		ID:    ReportStaff,
		Label: "Staff",
		Summary: []SummaryCard{
			{Label: "Total Staff", Value: "12", SubText: "Active: 10 | Inactive: 2"},
			{Label: "Attendance Rate", Value: "94.5%", SubText: "Present: 10/12 today"},
			{Label: "Total Salary", Value: "₹2,40,000/mo", SubText: "Paid: ₹80,000 (Dec 1-18)"},
			{Label: "Avg Performance", Value: "4.2/5", SubText: "Top: Raj Kumar"},
		},
		Charts: []Chart{
			{ID: "attendance", Title: "Attendance", Kind: ChartBar, Series: []Series{series("Attendance %",
				labeled{"Raj Kumar", 94}, labeled{"Sam Patel", 100}, labeled{"Kumar", 100},
				labeled{"Sita Devi", 94}, labeled{"Priya Singh", 83}, labeled{"Arun Sharma", 100},
				labeled{"Neha Gupta", 89}, labeled{"Karan Singh", 94},
			)}},
			{ID: "waiter_revenue", Title: "Waiter Performance", Kind: ChartBar, Series: []Series{series("Revenue",
				labeled{"Raj Kumar", 112000}, labeled{"Sam Patel", 98500}, labeled{"Priya Singh", 68900},
			)}},
			{ID: "salary", Title: "Salary Earned", Kind: ChartBar, Series: []Series{series("Earned",
				labeled{"Raj Kumar", 11333}, labeled{"Sam Patel", 12000}, labeled{"Kumar", 21000},
				labeled{"Sita Devi", 10200}, labeled{"Priya Singh", 9000}, labeled{"Arun Sharma", 19200},
			)}},
			{ID: "shifts", Title: "Shift Analysis", Kind: ChartLine, Series: []Series{series("Revenue",
				labeled{"Morning", 134000}, labeled{"Afternoon", 223000}, labeled{"Evening", 289000},
			)}},
		},
	}
}
