package domain

// Descriptor is a fixed-vocabulary wine attribute and its glossary text.
type Descriptor struct {
	Name        string
	Description string
}

// descriptors is the canonical vocabulary. Both the selector and the glossary
// read from it, and the order here is display order everywhere.
var descriptors = [...]Descriptor{
	{"apple", "A flavor note that gives wine a taste reminiscent of apples."},
	{"berry", "A general term for wines that have a flavor profile of various kinds of berries."},
	{"citrus", "Wines with a fresh, tangy flavor profile similar to that of citrus fruits like oranges and lemons."},
	{"dry", "A wine that is not sweet, having no perception of sugar content."},
	{"earth", "Describes a taste or aroma reminiscent of wet soil, mushrooms, or a forest floor."},
	{"firm tannins", "A term indicating a strong presence of tannins, giving the wine a structured and sometimes astringent mouthfeel."},
	{"floral", "Wines that contain aromas or flavors that are reminiscent of flowers."},
	{"full-bodied", "Describes a wine that is robust and rich, often with higher alcohol content and flavor intensity."},
	{"high acidity", `Wines with bright, crisp characteristics often described as "tart".`},
	{"light-bodied", "Refers to wines that are lighter in weight and mouthfeel, often with less alcohol and a delicate flavor profile."},
	{"low acidity", "Wines that are smoother and rounder, lacking in the sharpness provided by acidity."},
	{"medium-bodied", "Wines that fall between light and full-bodied with a moderate feel and balanced attributes."},
	{"oak", "A flavor profile imparted by aging wine in oak barrels, contributing to notes of vanilla, toast, and spices."},
	{"off-dry", "A wine that has a slight sweetness to it, typically with sugar content that is detectable but not high."},
	{"semi-sweet", "Wines that are more perceptibly sweet than off-dry wines, but not as sweet as dessert wines."},
	{"smooth tannins", "Wines with a softer, more velvety feel from tannins, lacking harshness."},
	{"spice", "Describes wines with flavors or aromas reminiscent of spices, which can range from black pepper to cinnamon."},
	{"stone fruit", "A flavor profile in wines that suggests fruits with pits, like peaches and apricots."},
	{"sweet", "Wines with high sugar content and a noticeably sweet taste."},
	{"tropical", "Wines with flavors that recall tropical fruits such as pineapple, mango, or papaya."},
}

// Len returns the size of the vocabulary.
func Len() int { return len(descriptors) }

// All returns a copy of the vocabulary in declaration order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors[:])
	return out
}

// At returns the descriptor at index i. ok is false when i is out of range.
func At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(descriptors) {
		return Descriptor{}, false
	}
	return descriptors[i], true
}

// Names returns the descriptor names in declaration order.
func Names() []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Name
	}
	return out
}

// IndexOf returns the index of the descriptor with the given name, or -1.
func IndexOf(name string) int {
	for i, d := range descriptors {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the descriptor with the given name.
func Lookup(name string) (Descriptor, bool) {
	i := IndexOf(name)
	if i < 0 {
		return Descriptor{}, false
	}
	return descriptors[i], true
}
