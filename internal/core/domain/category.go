package domain

// Category is one of the fixed paper classifications.
type Category string

const (
	CategoryArtificialIntelligence Category = "Artificial Intelligence"
	CategoryMachineLearning        Category = "Machine Learning"
	CategoryDataScience            Category = "Data Science"
	CategoryCybersecurity          Category = "Cybersecurity"
	CategoryComputerVision         Category = "Computer Vision"
	CategoryBlockchain             Category = "Blockchain"
	CategoryInternetOfThings       Category = "Internet of Things"
	CategoryCloudComputing         Category = "Cloud Computing"
	CategoryRobotics               Category = "Robotics"
	CategoryQuantumComputing       Category = "Quantum Computing"
)

var categories = []Category{
	CategoryArtificialIntelligence,
	CategoryMachineLearning,
	CategoryDataScience,
	CategoryCybersecurity,
	CategoryComputerVision,
	CategoryBlockchain,
	CategoryInternetOfThings,
	CategoryCloudComputing,
	CategoryRobotics,
	CategoryQuantumComputing,
}

// Categories returns the enumeration in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid reports whether c is one of the fixed categories (exact match).
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory returns the category for s or ErrInvalidCategory.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
