package catalog

func gallery(id string) []string {
	return []string{
		"/cars/" + id + "-1.png",
		"/cars/" + id + "-2.png",
		"/cars/" + id + "-3.png",
		"/cars/" + id + "-4.png",
	}
}

var vehicles = []Vehicle{
	{
		ID:          "porsche-911-gt3-rs",
		Name:        "911 GT3 RS",
		Brand:       "Porsche",
		Year:        2024,
		Price:       "$223,800",
		PriceNum:    223800,
		Type:        "Sports Car",
		Condition:   "New",
		Tagline:     "Track-bred. Road-legal.",
		Description: "The 911 GT3 RS is the ultimate naturally aspirated track weapon: a 4.0-liter flat-six producing 518 hp, mated to a 7-speed PDK and equipped with a DRS-style rear wing straight from motorsport. Every component is engineered to shave milliseconds off lap times.",
		Image:       "/cars/porsche-911-gt3-rs-1.png",
		Gallery:     gallery("porsche-911-gt3-rs"),
		ViewerURL:   "https://sketchfab.com/models/e738eae819c34d19a31dd066c45e0f3d/embed?autospin=1&autostart=1&preload=1&transparent=1",
		Specs: []Spec{
			{Label: "Engine", Value: "4.0L Naturally Aspirated Flat-6"},
			{Label: "Horsepower", Value: "518 HP @ 8,500 rpm"},
			{Label: "Torque", Value: "346 lb-ft @ 6,300 rpm"},
			{Label: "0-60 mph", Value: "3.0s"},
			{Label: "Top Speed", Value: "184 mph"},
			{Label: "Weight", Value: "3,268 lbs"},
			{Label: "Transmission", Value: "7-Speed PDK RWD"},
			{Label: "Exterior", Value: "Ice Grey Metallic"},
			{Label: "Interior", Value: "Race-Tex / Black Leather"},
			{Label: "Mileage", Value: "12 Delivery Miles"},
		},
		Features: []string{"Weissach Package", "Magnesium Forged Wheels", "PCCB (Ceramic Brakes)", "Carbon Fiber Full Bucket Seats", "Club Sport Package (Roll Cage)"},
	},
	{
		ID:          "lamborghini-huracan-evo",
		Name:        "Huracán EVO",
		Brand:       "Lamborghini",
		Year:        2024,
		Price:       "$269,571",
		PriceNum:    269571,
		Type:        "Supercar",
		Condition:   "New",
		Tagline:     "Unleash every emotion.",
		Description: "The Huracán EVO represents the next evolution of the V10 Lamborghini, featuring LDVI predictive technology, rear-wheel steering and a naturally aspirated 5.2L V10 delivering 630 hp of pure Italian fury.",
		Image:       "/cars/lamborghini-huracan-evo-1.png",
		Gallery:     gallery("lamborghini-huracan-evo"),
		ViewerURL:   "https://sketchfab.com/models/f72666fc65d548798482044124286642/embed",
		Specs: []Spec{
			{Label: "Engine", Value: "5.2L Naturally Aspirated V10"},
			{Label: "Horsepower", Value: "630 HP @ 8,000 rpm"},
			{Label: "Torque", Value: "443 lb-ft @ 6,500 rpm"},
			{Label: "0-60 mph", Value: "2.9s"},
			{Label: "Top Speed", Value: "202 mph"},
			{Label: "Weight", Value: "3,135 lbs"},
			{Label: "Transmission", Value: "7-Speed LDF Dual-Clutch"},
			{Label: "Exterior", Value: "Rosso Mars Metallic"},
			{Label: "Interior", Value: "Nero Ade Alcantara / Rosso Stitching"},
			{Label: "Mileage", Value: "45 Miles"},
		},
		Features: []string{"LDVI Predictive Technology", "Rear-Wheel Steering", "Lifting System with Magneto-rheologic Suspension", "Sensonum Premium Audio System", "Forged Composites Interior Components"},
	},
	{
		ID:          "ferrari-f8-tributo",
		Name:        "F8 Tributo",
		Brand:       "Ferrari",
		Year:        2024,
		Price:       "$280,000",
		PriceNum:    280000,
		Type:        "Supercar",
		Condition:   "New",
		Tagline:     "The essence of pure performance.",
		Description: "The F8 Tributo is a tribute to Ferrari's V8 heritage. Its 3.9L twin-turbo V8 delivers a staggering 710 hp, making it the most powerful V8 in Ferrari history. The aero is derived directly from the 488 Pista.",
		Image:       "/cars/ferrari-f8-tributo-1.png",
		Gallery:     gallery("ferrari-f8-tributo"),
		ViewerURL:   "https://sketchfab.com/models/8a86c4d634f64f8b8ee836bc93fa6ac8/embed?autospin=1&autostart=1&preload=1&transparent=1",
		Specs: []Spec{
			{Label: "Engine", Value: "3.9L Twin-Turbo V8"},
			{Label: "Horsepower", Value: "710 HP @ 8,000 rpm"},
			{Label: "Torque", Value: "568 lb-ft @ 3,250 rpm"},
			{Label: "0-60 mph", Value: "2.9s"},
			{Label: "Top Speed", Value: "211 mph"},
			{Label: "Weight", Value: "2,932 lbs"},
			{Label: "Transmission", Value: "7-Speed F1 Dual-Clutch"},
			{Label: "Exterior", Value: "Rosso Scuderia"},
			{Label: "Interior", Value: "Crema Leather / Carbon Accents"},
			{Label: "Mileage", Value: "85 Miles"},
		},
		Features: []string{"Carbon Fiber Racing Seats", "Suspension Lifter", "Scuderia Ferrari Shields on Fenders", "Passenger Display Screen", "JBL Professional Sound System"},
	},
	{
		ID:          "mclaren-720s",
		Name:        "720S",
		Brand:       "McLaren",
		Year:        2023,
		Price:       "$299,000",
		PriceNum:    299000,
		Type:        "Supercar",
		Condition:   "Certified Pre-Owned",
		Tagline:     "Raise your limits.",
		Description: "The 720S redefines the supercar experience with a carbon fiber Monocage II chassis, dihedral doors and a 4.0L twin-turbo V8 producing 710 hp.",
		Image:       "/cars/mclaren-720s-1.png",
		Gallery:     gallery("mclaren-720s"),
		ViewerURL:   "https://sketchfab.com/models/e820cf40821940bcafebf24bec693d16/embed?autospin=1&autostart=1&preload=1&transparent=1",
		Specs: []Spec{
			{Label: "Engine", Value: "4.0L Twin-Turbo V8 M840T"},
			{Label: "Horsepower", Value: "710 HP @ 7,250 rpm"},
			{Label: "Torque", Value: "568 lb-ft @ 5,500 rpm"},
			{Label: "0-60 mph", Value: "2.8s"},
			{Label: "Top Speed", Value: "212 mph"},
			{Label: "Weight", Value: "2,828 lbs"},
			{Label: "Transmission", Value: "7-Speed SSG Seamless Shift"},
			{Label: "Exterior", Value: "Papaya Spark MSO"},
			{Label: "Interior", Value: "Carbon Black Alcantara"},
			{Label: "Mileage", Value: "1,240 Miles"},
		},
		Features: []string{"720S Performance Pack", "Carbon Fiber Exterior Upgrade Pack 1, 2, & 3", "Bowers & Wilkins 12-Speaker System", "Track Telemetry App & Cameras", "Vehicle Lift"},
	},
	{
		ID:          "mercedes-amg-gt-r",
		Name:        "AMG GT-R",
		Brand:       "Mercedes-Benz",
		Year:        2024,
		Price:       "$162,900",
		PriceNum:    162900,
		Type:        "Grand Tourer",
		Condition:   "New",
		Tagline:     "Born on the Green Hell.",
		Description: "Forged on the Nürburgring Nordschleife, the AMG GT-R is the pinnacle of Mercedes racing DNA for the road. Its handcrafted 4.0L bi-turbo V8 and active aerodynamics deliver 577 hp of precision aggression.",
		Image:       "/cars/mercedes-amg-gt-r-1.png",
		Gallery:     gallery("mercedes-amg-gt-r"),
		ViewerURL:   "https://sketchfab.com/models/9fdb06fc4eab473ba03a77ebff527732/embed?autospin=1&autostart=1&preload=1&transparent=1",
		Specs: []Spec{
			{Label: "Engine", Value: "4.0L Bi-Turbo V8 (Hot Inner-V)"},
			{Label: "Horsepower", Value: "577 HP @ 6,250 rpm"},
			{Label: "Torque", Value: "516 lb-ft @ 1,900 rpm"},
			{Label: "0-60 mph", Value: "3.5s"},
			{Label: "Top Speed", Value: "198 mph"},
			{Label: "Weight", Value: "3,594 lbs"},
			{Label: "Transmission", Value: "7-Speed AMG SPEEDSHIFT DCT"},
			{Label: "Exterior", Value: "AMG Green Hell Magno"},
			{Label: "Interior", Value: "Exclusive Nappa Leather / DINAMICA"},
			{Label: "Mileage", Value: "24 Miles"},
		},
		Features: []string{"AMG Track Pace", "Burmester High-End Surround Sound", "Carbon Fiber Roof Component", "AMG Ceramic High-Performance Composite Braking System"},
	},
	{
		ID:          "aston-martin-vantage",
		Name:        "Vantage",
		Brand:       "Aston Martin",
		Year:        2024,
		Price:       "$153,900",
		PriceNum:    153900,
		Type:        "Sports Car",
		Condition:   "Certified Pre-Owned",
		Tagline:     "Beautiful is not enough.",
		Description: "The Vantage is Aston Martin at its most instinctive: a true sports car with a 4.0L twin-turbo V8 sourced from AMG and a chassis tuned for pure driving pleasure.",
		Image:       "/cars/aston-martin-vantage-1.png",
		Gallery:     gallery("aston-martin-vantage"),
		ViewerURL:   "https://sketchfab.com/models/75ca92f8d548470d83a7daaacb100bc5/embed?autospin=1&autostart=1&preload=1&transparent=1",
		Specs: []Spec{
			{Label: "Engine", Value: "4.0L Twin-Turbo V8 (Hand-built)"},
			{Label: "Horsepower", Value: "503 HP @ 6,000 rpm"},
			{Label: "Torque", Value: "505 lb-ft @ 2,000 rpm"},
			{Label: "0-60 mph", Value: "3.5s"},
			{Label: "Top Speed", Value: "195 mph"},
			{Label: "Weight", Value: "3,373 lbs"},
			{Label: "Transmission", Value: "8-Speed ZF Automatic RWD"},
			{Label: "Exterior", Value: "Cinnabar Orange (Q Special)"},
			{Label: "Interior", Value: "Obsidian Black Leather / Coral Stitch"},
			{Label: "Mileage", Value: "3,100 Miles"},
		},
		Features: []string{"Tech Collection Package", "Aston Martin Premium Audio System", "Sports Plus Collection", "Q Special Paint Formulation", "Ventilated Front Seats"},
	},
}

var brands = []Brand{
	{Name: "Porsche", IconURL: "https://www.carlogos.org/car-logos/porsche-logo.png"},
	{Name: "Lamborghini", IconURL: "https://www.carlogos.org/car-logos/lamborghini-logo.png"},
	{Name: "Ferrari", IconURL: "https://www.carlogos.org/car-logos/ferrari-logo.png"},
	{Name: "Rolls-Royce", IconURL: "https://www.carlogos.org/logo/Rolls-Royce-logo.png"},
	{Name: "McLaren", IconURL: "https://www.carlogos.org/car-logos/mclaren-logo.png"},
	{Name: "Aston Martin", IconURL: "https://www.carlogos.org/car-logos/aston-martin-logo.png"},
	{Name: "Bugatti", IconURL: "https://www.carlogos.org/car-logos/bugatti-logo.png"},
	{Name: "Bentley", IconURL: "https://www.carlogos.org/car-logos/bentley-logo.png"},
	{Name: "Pagani", IconURL: "https://www.carlogos.org/car-logos/pagani-logo.png"},
	{Name: "Koenigsegg", IconURL: "https://www.carlogos.org/car-logos/koenigsegg-logo.png"},
}

var reviews = []Review{
	{
		ID:        "r1",
		Author:    "Marcus Vance",
		Role:      "Director of Logistics",
		Company:   "Vanguard Dynamics",
		Avatar:    "https://ui-avatars.com/api/?name=Marcus+Vance&background=0D0D0D&color=c9a96e&size=100",
		Rating:    5,
		Sentiment: "Highly Positive",
		Verified:  true,
		Highlight: "Impeccable execution from start to finish.",
		Text:      "Procuring a fleet of GT cars for our executive team was handled with a level of precision I've rarely seen. They truly understand enterprise needs.",
	},
	{
		ID:        "r2",
		Author:    "Elena Rostova",
		Role:      "Founder",
		Company:   "Rostova Capital",
		Avatar:    "https://ui-avatars.com/api/?name=Elena+Rostova&background=333&color=FFF&size=100",
		Rating:    5,
		Sentiment: "Exceptional",
		Verified:  true,
		Highlight: "They don't just sell cars; they curate rolling art.",
		Text:      "The Aston Martin Vantage I acquired through AutoSphere was sourced with incredible care. The entire allocation process was seamless and entirely private.",
	},
	{
		ID:        "r3",
		Author:    "David Chen",
		Role:      "Managing Partner",
		Company:   "Horizon Ventures",
		Avatar:    "https://ui-avatars.com/api/?name=David+Chen&background=111&color=c9a96e&size=100",
		Rating:    5,
		Sentiment: "Positive",
		Verified:  true,
		Highlight: "A remarkably frictionless acquisition process.",
		Text:      "The rigorous mechanical vetting they apply to their inventory provided immense peace of mind. The Huracán EVO exceeded every expectation upon arrival.",
	},
}

var engineeringStats = []EngineeringStat{
	{
		ID:          "hp",
		IconSVG:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor"><path d="M13 2L3 14h9l-1 8 10-12h-9l1-8z" /></svg>`,
		Value:       1200,
		Suffix:      "HP",
		Label:       "Peak Performance",
		Description: "Engineering that pushes the boundaries of mechanical artistry.",
	},
	{
		ID:          "accel",
		IconSVG:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor"><circle cx="12" cy="12" r="10" /><polyline points="12 6 12 12 16 14" /></svg>`,
		Value:       2.4,
		Suffix:      "s",
		Label:       "0-100 KM/H",
		Description: "From stillness to velocity in the span of a single breath.",
	},
	{
		ID:          "curated",
		IconSVG:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor"><path d="M12 2L2 7l10 5 10-5-10-5z" /><path d="M2 17l10 5 10-5" /><path d="M2 12l10 5 10-5" /></svg>`,
		Value:       47,
		Suffix:      "",
		Label:       "Models Curated",
		Description: "Each one hand-selected from the world's most prestigious marques.",
	},
}

var storySteps = []StoryStep{
	{
		ID:          "s1",
		Image:       "/cars/story-1.png",
		Number:      "01",
		Label:       "The Foundation",
		Title:       "Forged in Passion",
		Description: "AutoSphere began in 2004 with a singular vision: to curate the world's most extraordinary vehicles for those who demand the absolute pinnacle of automotive engineering.",
	},
	{
		ID:          "s2",
		Image:       "/cars/story-2.png",
		Number:      "02",
		Label:       "The Curation",
		Title:       "Uncompromising Standards",
		Description: "Every vehicle in our collection undergoes a rigorous 300-point inspection, ensuring perfection in every detail.",
	},
	{
		ID:          "s3",
		Image:       "/cars/story-3.png",
		Number:      "03",
		Label:       "The Experience",
		Title:       "Beyond the Drive",
		Description: "From private track days to exclusive concierge services, the AutoSphere experience extends far beyond the moment you take the keys.",
	},
	{
		ID:          "s4",
		Image:       "/cars/story-4.png",
		Number:      "04",
		Label:       "The Future",
		Title:       "Driving Innovation",
		Description: "Embracing the latest in hybrid hypercars and elite electric performance, we remain at the cutting edge of driving exhilaration.",
	},
}
