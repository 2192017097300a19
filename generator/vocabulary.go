package generator

var categories = []string{
	"Italian", "Indian", "Chinese", "Mexican", "Japanese", "Thai", "French", "Mediterranean", "American", "Middle Eastern",
}

var items = map[string][]string{
	"Italian":        {"Pasta", "Pizza", "Risotto", "Lasagna", "Ravioli", "Gnocchi", "Osso Buco", "Tiramisu", "Gelato", "Bruschetta"},
	"Indian":         {"Butter Chicken", "Biryani", "Tikka Masala", "Samosas", "Dosa", "Vindaloo", "Korma", "Naan", "Tandoori", "Kheer"},
	"Chinese":        {"Dumplings", "Kung Pao Chicken", "Fried Rice", "Hot Pot", "Peking Duck", "Mapo Tofu", "Spring Rolls", "Wonton Soup", "Char Siu", "Dan Dan Noodles"},
	"Mexican":        {"Tacos", "Burritos", "Quesadillas", "Enchiladas", "Tamales", "Chiles Rellenos", "Guacamole", "Pozole", "Tostadas", "Churros"},
	"Japanese":       {"Sushi", "Ramen", "Tempura", "Udon", "Sashimi", "Tonkatsu", "Okonomiyaki", "Yakitori", "Miso Soup", "Matcha Ice Cream"},
	"Thai":           {"Pad Thai", "Green Curry", "Tom Yum", "Massaman Curry", "Som Tum", "Pad See Ew", "Tom Kha Gai", "Mango Sticky Rice", "Satay", "Khao Soi"},
	"French":         {"Coq au Vin", "Bouillabaisse", "Ratatouille", "Quiche Lorraine", "Croissant", "Boeuf Bourguignon", "Crème Brûlée", "Soufflé", "Cassoulet", "Tarte Tatin"},
	"Mediterranean":  {"Hummus", "Falafel", "Shawarma", "Moussaka", "Tabbouleh", "Baklava", "Dolma", "Gyro", "Spanakopita", "Baba Ganoush"},
	"American":       {"Hamburger", "Hot Dog", "BBQ Ribs", "Mac & Cheese", "Fried Chicken", "Apple Pie", "Clam Chowder", "Buffalo Wings", "Pancakes", "Cornbread"},
	"Middle Eastern": {"Kebab", "Shish Tawook", "Mansaf", "Fattoush", "Knafeh", "Mujadara", "Falafel", "Shakshuka", "Ful Medames", "Baklava"},
}

var adjectives = []string{"Spicy", "Creamy", "Crispy", "Grilled", "Roasted", "Steamed", "Fried", "Baked", "Smoked", "Marinated"}

var ingredients = []string{"Chicken", "Beef", "Vegetable", "Seafood", "Tofu", "Paneer", "Mushroom", "Lamb", "Pork", "Fish"}
