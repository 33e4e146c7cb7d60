package catalog

var defaultCatalog = New(seedCategories())

// Default returns the built-in topic catalog.
func Default() *Catalog {
	return defaultCatalog
}

func seedCategories() []Category {
	return []Category{
		{
			Name: "Science",
			Topics: []string{
				"Physics", "Chemistry", "Biology", "Mathematics", "Computer Science",
				"Astronomy", "Geology", "Medicine", "Genetics", "Ecology",
				"Quantum Physics", "Molecular Biology", "Organic Chemistry", "Calculus", "Statistics",
			},
		},
		{
			Name: "Technology",
			Topics: []string{
				"Artificial Intelligence", "Machine Learning", "Blockchain", "Internet of Things",
				"Cybersecurity", "Cloud Computing", "Robotics", "Data Science", "Web Development",
				"Mobile Technology", "Virtual Reality", "Augmented Reality", "5G Technology",
				"Quantum Computing",
			},
		},
		{
			Name: "History",
			Topics: []string{
				"Ancient Civilizations", "World Wars", "Indian History", "Medieval Period",
				"Renaissance", "Industrial Revolution", "Cold War", "Ancient Egypt", "Roman Empire",
				"Mughal Empire", "British Raj", "Independence Movement", "Archaeological Discoveries",
			},
		},
		{
			Name: "Geography",
			Topics: []string{
				"Continents", "Countries", "Rivers", "Mountains", "Climate Change",
				"Natural Resources", "Population Studies", "Urban Planning", "Ecosystems",
				"Weather Patterns", "Ocean Currents", "Plate Tectonics", "Biodiversity",
			},
		},
		{
			Name: "Arts & Literature",
			Topics: []string{
				"Literature", "Music", "Painting", "Sculpture", "Dance", "Theater", "Cinema",
				"Photography", "Architecture", "Poetry", "Classical Music", "Folk Arts",
				"Modern Art", "Digital Art",
			},
		},
		{
			Name: "Languages",
			Topics: []string{
				"English Grammar", "Hindi Literature", "Sanskrit Studies", "Tamil Poetry",
				"Bengali Literature", "Telugu Culture", "Marathi Arts", "Gujarati Heritage",
				"Punjabi Folk", "Urdu Poetry", "Language Evolution", "Linguistics",
			},
		},
		{
			Name: "Economics",
			Topics: []string{
				"Microeconomics", "Macroeconomics", "International Trade", "Banking",
				"Stock Market", "Cryptocurrency", "Economic Policy", "Development Economics",
				"Behavioral Economics", "Game Theory",
			},
		},
		{
			Name: "Philosophy",
			Topics: []string{
				"Ancient Philosophy", "Modern Philosophy", "Ethics", "Logic", "Metaphysics",
				"Political Philosophy", "Eastern Philosophy", "Western Philosophy",
				"Indian Philosophy", "Existentialism",
			},
		},
		{
			Name: "Health & Medicine",
			Topics: []string{
				"Anatomy", "Physiology", "Nutrition", "Mental Health", "Public Health",
				"Pharmacology", "Surgery", "Pediatrics", "Cardiology", "Neurology",
				"Traditional Medicine", "Ayurveda",
			},
		},
		{
			Name: "Environment",
			Topics: []string{
				"Climate Change", "Renewable Energy", "Conservation", "Pollution", "Sustainability",
				"Green Technology", "Wildlife Protection", "Forest Management", "Water Resources",
				"Carbon Footprint",
			},
		},
	}
}
