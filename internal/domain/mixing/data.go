package mixing

// Built-in data tables. These mirror the game's published values; a JSON data
// file loaded through LoadCatalogFile can override them at startup.

var defaultEffects = []Effect{
	{Name: "Anti-Gravity", Multiplier: 0.54},
	{Name: "Athletic", Multiplier: 0.32},
	{Name: "Balding", Multiplier: 0.30},
	{Name: "Bright-Eyed", Multiplier: 0.40},
	{Name: "Calming", Multiplier: 0.10},
	{Name: "Calorie-Dense", Multiplier: 0.28},
	{Name: "Cyclopean", Multiplier: 0.56},
	{Name: "Disorienting", Multiplier: 0.00},
	{Name: "Electrifying", Multiplier: 0.50},
	{Name: "Energizing", Multiplier: 0.22},
	{Name: "Euphoric", Multiplier: 0.18},
	{Name: "Explosive", Multiplier: 0.00},
	{Name: "Focused", Multiplier: 0.16},
	{Name: "Foggy", Multiplier: 0.36},
	{Name: "Gingeritis", Multiplier: 0.20},
	{Name: "Glowing", Multiplier: 0.48},
	{Name: "Jennerising", Multiplier: 0.42},
	{Name: "Laxative", Multiplier: 0.00},
	{Name: "Long Faced", Multiplier: 0.52},
	{Name: "Munchies", Multiplier: 0.12},
	{Name: "Paranoia", Multiplier: 0.00},
	{Name: "Refreshing", Multiplier: 0.14},
	{Name: "Schizophrenia", Multiplier: 0.00},
	{Name: "Sedating", Multiplier: 0.26},
	{Name: "Seizure-Inducing", Multiplier: 0.00},
	{Name: "Shrinking", Multiplier: 0.60},
	{Name: "Slippery", Multiplier: 0.34},
	{Name: "Smelly", Multiplier: 0.00},
	{Name: "Sneaky", Multiplier: 0.24},
	{Name: "Spicy", Multiplier: 0.38},
	{Name: "Thought-Provoking", Multiplier: 0.44},
	{Name: "Toxic", Multiplier: 0.00},
	{Name: "Tropic Thunder", Multiplier: 0.46},
	{Name: "Zombifying", Multiplier: 0.58},
}

var defaultSubstances = []Substance{
	{
		Name: "Cuke", Cost: 2, BaseEffect: "Energizing",
		Rules: []Rule{
			{IfPresent: []string{"Toxic"}, Removes: []string{"Toxic"}, Adds: "Euphoric"},
			{IfPresent: []string{"Slippery"}, Removes: []string{"Slippery"}, Adds: "Munchies"},
			{IfPresent: []string{"Sneaky"}, Removes: []string{"Sneaky"}, Adds: "Paranoia"},
			{IfPresent: []string{"Foggy"}, Removes: []string{"Foggy"}, Adds: "Cyclopean"},
			{IfPresent: []string{"Gingeritis"}, Removes: []string{"Gingeritis"}, Adds: "Thought-Provoking"},
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Athletic"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Laxative"},
		},
	},
	{
		Name: "Banana", Cost: 2, BaseEffect: "Gingeritis",
		Rules: []Rule{
			{IfPresent: []string{"Energizing"}, IfAbsent: []string{"Cyclopean"}, Removes: []string{"Energizing"}, Adds: "Thought-Provoking"},
			{IfPresent: []string{"Calming"}, Removes: []string{"Calming"}, Adds: "Sneaky"},
			{IfPresent: []string{"Toxic"}, Removes: []string{"Toxic"}, Adds: "Smelly"},
			{IfPresent: []string{"Long Faced"}, Removes: []string{"Long Faced"}, Adds: "Refreshing"},
			{IfPresent: []string{"Cyclopean"}, Removes: []string{"Cyclopean"}, Adds: "Energizing"},
			{IfPresent: []string{"Disorienting"}, Removes: []string{"Disorienting"}, Adds: "Focused"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Seizure-Inducing"},
			{IfPresent: []string{"Paranoia"}, Removes: []string{"Paranoia"}, Adds: "Jennerising"},
			{IfPresent: []string{"Smelly"}, Removes: []string{"Smelly"}, Adds: "Anti-Gravity"},
		},
	},
	{
		Name: "Paracetamol", Cost: 3, BaseEffect: "Sneaky",
		Rules: []Rule{
			{IfPresent: []string{"Energizing"}, Removes: []string{"Energizing"}, Adds: "Paranoia"},
			{IfPresent: []string{"Calming"}, Removes: []string{"Calming"}, Adds: "Slippery"},
			{IfPresent: []string{"Toxic"}, Removes: []string{"Toxic"}, Adds: "Tropic Thunder"},
			{IfPresent: []string{"Spicy"}, Removes: []string{"Spicy"}, Adds: "Bright-Eyed"},
			{IfPresent: []string{"Glowing"}, Removes: []string{"Glowing"}, Adds: "Toxic"},
			{IfPresent: []string{"Foggy"}, Removes: []string{"Foggy"}, Adds: "Calming"},
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Anti-Gravity"},
			{IfPresent: []string{"Paranoia"}, Removes: []string{"Paranoia"}, Adds: "Balding"},
			{IfPresent: []string{"Electrifying"}, Removes: []string{"Electrifying"}, Adds: "Athletic"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Gingeritis"},
		},
	},
	{
		Name: "Donut", Cost: 3, BaseEffect: "Calorie-Dense",
		Rules: []Rule{
			{IfPresent: []string{"Calorie-Dense"}, IfAbsent: []string{"Explosive"}, Adds: "Explosive"},
			{IfPresent: []string{"Balding"}, Removes: []string{"Balding"}, Adds: "Sneaky"},
			{IfPresent: []string{"Anti-Gravity"}, Removes: []string{"Anti-Gravity"}, Adds: "Slippery"},
			{IfPresent: []string{"Jennerising"}, Removes: []string{"Jennerising"}, Adds: "Gingeritis"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Euphoric"},
			{IfPresent: []string{"Shrinking"}, Removes: []string{"Shrinking"}, Adds: "Energizing"},
		},
	},
	{
		Name: "Viagra", Cost: 4, BaseEffect: "Tropic Thunder",
		Rules: []Rule{
			{IfPresent: []string{"Athletic"}, Removes: []string{"Athletic"}, Adds: "Sneaky"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Bright-Eyed"},
			{IfPresent: []string{"Laxative"}, Removes: []string{"Laxative"}, Adds: "Calming"},
			{IfPresent: []string{"Disorienting"}, Removes: []string{"Disorienting"}, Adds: "Toxic"},
		},
	},
	{
		Name: "Mouth Wash", Cost: 4, BaseEffect: "Balding",
		Rules: []Rule{
			{IfPresent: []string{"Calming"}, Removes: []string{"Calming"}, Adds: "Anti-Gravity"},
			{IfPresent: []string{"Calorie-Dense"}, Removes: []string{"Calorie-Dense"}, Adds: "Sneaky"},
			{IfPresent: []string{"Explosive"}, Removes: []string{"Explosive"}, Adds: "Sedating"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Jennerising"},
		},
	},
	{
		Name: "Flu Medicine", Cost: 5, BaseEffect: "Sedating",
		Rules: []Rule{
			{IfPresent: []string{"Calming"}, Removes: []string{"Calming"}, Adds: "Bright-Eyed"},
			{IfPresent: []string{"Athletic"}, Removes: []string{"Athletic"}, Adds: "Munchies"},
			{IfPresent: []string{"Thought-Provoking"}, Removes: []string{"Thought-Provoking"}, Adds: "Gingeritis"},
			{IfPresent: []string{"Cyclopean"}, Removes: []string{"Cyclopean"}, Adds: "Foggy"},
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Slippery"},
			{IfPresent: []string{"Laxative"}, Removes: []string{"Laxative"}, Adds: "Euphoric"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Toxic"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Calming"},
			{IfPresent: []string{"Electrifying"}, Removes: []string{"Electrifying"}, Adds: "Refreshing"},
			{IfPresent: []string{"Shrinking"}, Removes: []string{"Shrinking"}, Adds: "Paranoia"},
		},
	},
	{
		Name: "Gasoline", Cost: 5, BaseEffect: "Toxic",
		Rules: []Rule{
			{IfPresent: []string{"Gingeritis"}, Removes: []string{"Gingeritis"}, Adds: "Smelly"},
			{IfPresent: []string{"Jennerising"}, Removes: []string{"Jennerising"}, Adds: "Sneaky"},
			{IfPresent: []string{"Sneaky"}, Removes: []string{"Sneaky"}, Adds: "Tropic Thunder"},
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Sedating"},
			{IfPresent: []string{"Energizing"}, IfAbsent: []string{"Euphoric"}, Removes: []string{"Energizing"}, Adds: "Spicy"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Energizing"},
			{IfPresent: []string{"Laxative"}, Removes: []string{"Laxative"}, Adds: "Foggy"},
			{IfPresent: []string{"Disorienting"}, Removes: []string{"Disorienting"}, Adds: "Glowing"},
			{IfPresent: []string{"Paranoia"}, Removes: []string{"Paranoia"}, Adds: "Calming"},
			{IfPresent: []string{"Electrifying"}, Removes: []string{"Electrifying"}, Adds: "Disorienting"},
			{IfPresent: []string{"Shrinking"}, Removes: []string{"Shrinking"}, Adds: "Focused"},
		},
	},
	{
		Name: "Energy Drink", Cost: 6, BaseEffect: "Athletic",
		Rules: []Rule{
			{IfPresent: []string{"Sedating"}, Removes: []string{"Sedating"}, Adds: "Munchies"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Energizing"},
			{IfPresent: []string{"Spicy"}, Removes: []string{"Spicy"}, Adds: "Euphoric"},
			{IfPresent: []string{"Tropic Thunder"}, Removes: []string{"Tropic Thunder"}, Adds: "Sneaky"},
			{IfPresent: []string{"Glowing"}, Removes: []string{"Glowing"}, Adds: "Disorienting"},
			{IfPresent: []string{"Foggy"}, Removes: []string{"Foggy"}, Adds: "Laxative"},
			{IfPresent: []string{"Disorienting"}, Removes: []string{"Disorienting"}, Adds: "Electrifying"},
			{IfPresent: []string{"Schizophrenia"}, Removes: []string{"Schizophrenia"}, Adds: "Balding"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Shrinking"},
		},
	},
	{
		Name: "Motor Oil", Cost: 6, BaseEffect: "Slippery",
		Rules: []Rule{
			{IfPresent: []string{"Energizing"}, IfAbsent: []string{"Munchies"}, Removes: []string{"Energizing"}, Adds: "Munchies"},
			{IfPresent: []string{"Foggy"}, Removes: []string{"Foggy"}, Adds: "Toxic"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Sedating"},
			{IfPresent: []string{"Paranoia"}, Removes: []string{"Paranoia"}, Adds: "Anti-Gravity"},
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Schizophrenia"},
		},
	},
	{
		Name: "Mega Bean", Cost: 7, BaseEffect: "Foggy",
		Rules: []Rule{
			{IfPresent: []string{"Energizing"}, IfAbsent: []string{"Thought-Provoking"}, Removes: []string{"Energizing"}, Adds: "Cyclopean"},
			{IfPresent: []string{"Calming"}, Removes: []string{"Calming"}, Adds: "Glowing"},
			{IfPresent: []string{"Sneaky"}, Removes: []string{"Sneaky"}, Adds: "Calming"},
			{IfPresent: []string{"Jennerising"}, Removes: []string{"Jennerising"}, Adds: "Paranoia"},
			{IfPresent: []string{"Athletic"}, Removes: []string{"Athletic"}, Adds: "Laxative"},
			{IfPresent: []string{"Slippery"}, Removes: []string{"Slippery"}, Adds: "Toxic"},
			{IfPresent: []string{"Thought-Provoking"}, Removes: []string{"Thought-Provoking"}, Adds: "Energizing"},
			{IfPresent: []string{"Seizure-Inducing"}, Removes: []string{"Seizure-Inducing"}, Adds: "Focused"},
			{IfPresent: []string{"Focused"}, Removes: []string{"Focused"}, Adds: "Disorienting"},
			{IfPresent: []string{"Shrinking"}, Removes: []string{"Shrinking"}, Adds: "Electrifying"},
		},
	},
	{
		Name: "Chili", Cost: 7, BaseEffect: "Spicy",
		Rules: []Rule{
			{IfPresent: []string{"Athletic"}, Removes: []string{"Athletic"}, Adds: "Euphoric"},
			{IfPresent: []string{"Anti-Gravity"}, Removes: []string{"Anti-Gravity"}, Adds: "Tropic Thunder"},
			{IfPresent: []string{"Sneaky"}, Removes: []string{"Sneaky"}, Adds: "Bright-Eyed"},
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Toxic"},
			{IfPresent: []string{"Laxative"}, Removes: []string{"Laxative"}, Adds: "Long Faced"},
			{IfPresent: []string{"Shrinking"}, Removes: []string{"Shrinking"}, Adds: "Refreshing"},
		},
	},
	{
		Name: "Battery", Cost: 8, BaseEffect: "Bright-Eyed",
		Rules: []Rule{
			{IfPresent: []string{"Munchies"}, Removes: []string{"Munchies"}, Adds: "Tropic Thunder"},
			{IfPresent: []string{"Euphoric"}, IfAbsent: []string{"Electrifying"}, Removes: []string{"Euphoric"}, Adds: "Zombifying"},
			{IfPresent: []string{"Electrifying"}, Removes: []string{"Electrifying"}, Adds: "Euphoric"},
			{IfPresent: []string{"Laxative"}, Removes: []string{"Laxative"}, Adds: "Calorie-Dense"},
			{IfPresent: []string{"Cyclopean"}, Removes: []string{"Cyclopean"}, Adds: "Glowing"},
			{IfPresent: []string{"Shrinking"}, Removes: []string{"Shrinking"}, Adds: "Munchies"},
		},
	},
	{
		Name: "Iodine", Cost: 8, BaseEffect: "Jennerising",
		Rules: []Rule{
			{IfPresent: []string{"Calming"}, Removes: []string{"Calming"}, Adds: "Balding"},
			{IfPresent: []string{"Toxic"}, Removes: []string{"Toxic"}, Adds: "Sneaky"},
			{IfPresent: []string{"Foggy"}, Removes: []string{"Foggy"}, Adds: "Paranoia"},
			{IfPresent: []string{"Calorie-Dense"}, Removes: []string{"Calorie-Dense"}, Adds: "Gingeritis"},
			{IfPresent: []string{"Euphoric"}, Removes: []string{"Euphoric"}, Adds: "Seizure-Inducing"},
			{IfPresent: []string{"Refreshing"}, Removes: []string{"Refreshing"}, Adds: "Thought-Provoking"},
		},
	},
	{
		Name: "Addy", Cost: 9, BaseEffect: "Thought-Provoking",
		Rules: []Rule{
			{IfPresent: []string{"Sedating"}, Removes: []string{"Sedating"}, Adds: "Gingeritis"},
			{IfPresent: []string{"Long Faced"}, Removes: []string{"Long Faced"}, Adds: "Electrifying"},
			{IfPresent: []string{"Glowing"}, Removes: []string{"Glowing"}, Adds: "Refreshing"},
			{IfPresent: []string{"Foggy"}, Removes: []string{"Foggy"}, Adds: "Energizing"},
			{IfPresent: []string{"Explosive"}, Removes: []string{"Explosive"}, Adds: "Euphoric"},
		},
	},
	{
		Name: "Horse Semen", Cost: 9, BaseEffect: "Long Faced",
		Rules: []Rule{
			{IfPresent: []string{"Anti-Gravity"}, Removes: []string{"Anti-Gravity"}, Adds: "Calming"},
			{IfPresent: []string{"Gingeritis"}, Removes: []string{"Gingeritis"}, Adds: "Refreshing"},
			{IfPresent: []string{"Thought-Provoking"}, Removes: []string{"Thought-Provoking"}, Adds: "Electrifying"},
		},
	},
}

var defaultProducts = []ProductVariety{
	{Name: "OG Kush", BasePrice: 38, InitialEffect: "Calming"},
	{Name: "Sour Diesel", BasePrice: 40, InitialEffect: "Refreshing"},
	{Name: "Green Crack", BasePrice: 43, InitialEffect: "Energizing"},
	{Name: "Granddaddy Purple", BasePrice: 44, InitialEffect: "Sedating"},
	{Name: "Meth", BasePrice: 70, InitialEffect: ""},
	{Name: "Cocaine", BasePrice: 150, InitialEffect: ""},
}

// DefaultCatalog returns a catalog built from the built-in tables.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultSubstances, defaultEffects, defaultProducts)
}
