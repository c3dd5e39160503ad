package menu

// Categories is the fixed list the ordering UI groups by. Menu items must
// reference one of these.
var Categories = []string{
	"Coffee", "Tea", "Pastries", "Snacks", "Beverages",
	"Breakfast", "Lunch", "Desserts", "Sandwiches", "Smoothies",
	"Starters", "Mains", "Steaks", "Seafood", "Vegetarian",
	"Salads", "Sides", "Soups", "Beers", "Wines",
	"Pizza", "Pasta", "Burgers",
}

func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
