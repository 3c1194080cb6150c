package store

// DefaultCatalog returns the products the service is seeded with at startup.
// State lives only for the process lifetime, so a restart resets to this set.
func DefaultCatalog() []Product {
	return []Product{
		{
			Name:        "Laptop Pro X",
			Description: "Powerful laptop for professional use with high performance.",
			Price:       1500,
			Category:    "Electronics",
			InStock:     true,
		},
		{
			Name:        "Ergonomic Keyboard",
			Description: "Comfortable keyboard for extended typing sessions, reduces strain.",
			Price:       75,
			Category:    "Accessories",
			InStock:     true,
		},
		{
			Name:        "Wireless Mouse",
			Description: "High-precision wireless mouse with long battery life.",
			Price:       30,
			Category:    "Accessories",
			InStock:     false,
		},
		{
			Name:        "4K Monitor",
			Description: "Ultra HD monitor for stunning visuals and immersive experience.",
			Price:       350,
			Category:    "Electronics",
			InStock:     true,
		},
		{
			Name:        "Gaming Headset",
			Description: "Immersive sound for gaming with noise-canceling microphone.",
			Price:       90,
			Category:    "Gaming",
			InStock:     true,
		},
		{
			Name:        "USB-C Hub",
			Description: "Multi-port USB-C hub for modern laptops.",
			Price:       45,
			Category:    "Accessories",
			InStock:     true,
		},
		{
			Name:        "External SSD 1TB",
			Description: "Fast and portable storage solution.",
			Price:       120,
			Category:    "Storage",
			InStock:     true,
		},
	}
}
