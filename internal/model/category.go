package model

// Categories is the closed set of item types the store accepts.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
	"Toys",
	"Automotive",
	"Other",
}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
