package schema

import "strings"

// ShopTypeInfo is the catalog entry for one shop type
type ShopTypeInfo struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// shopTypeOrder preserves the catalog ordering for listings
var shopTypeOrder = []string{
	"kirana", "supermarket", "general_store",
	"clothing", "footwear", "boutique",
	"auto_parts", "bike_repair", "car_service",
	"restaurant", "street_food", "bakery", "cafe",
	"pharmacy", "medical_store",
	"hardware_store", "electrical_shop", "furniture_store",
	"mobile_shop", "electronics_store",
	"stationery", "gift_shop", "cosmetics",
}

// templates is the centralized shop type configuration.
// Add new shop types here; nothing else needs to change.
var templates = map[string]Template{
	"kirana": {
		ShopType: "kirana", Label: "Kirana / Grocery Store", Icon: "🛒", Category: "retail",
		Attributes: []FieldSpec{
			{Key: "expiry_date", Label: "Expiry Date", Type: FieldTypeDate, Required: true},
			{Key: "weight", Label: "Weight (g/kg)", Type: FieldTypeText},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "mrp", Label: "MRP (Rs.)", Type: FieldTypeNumber},
		},
		LowStockThreshold: 10,
		Units:             []string{"piece", "kg", "litre", "packet", "dozen"},
	},
	"supermarket": {
		ShopType: "supermarket", Label: "Supermarket", Icon: "🏪", Category: "retail",
		Attributes: []FieldSpec{
			{Key: "expiry_date", Label: "Expiry Date", Type: FieldTypeDate, Required: true},
			{Key: "brand", Label: "Brand", Type: FieldTypeText, Required: true},
			{Key: "barcode", Label: "Barcode", Type: FieldTypeText},
			{Key: "mrp", Label: "MRP (Rs.)", Type: FieldTypeNumber, Required: true},
			{Key: "category", Label: "Category", Type: FieldTypeSelect, Required: true,
				Options: []string{"Food", "Beverages", "Personal Care", "Household", "Dairy", "Snacks"}},
		},
		LowStockThreshold: 15,
		Units:             []string{"piece", "kg", "litre", "packet"},
	},
	"general_store": {
		ShopType: "general_store", Label: "General Store", Icon: "🏬", Category: "retail",
		Attributes: []FieldSpec{
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "category", Label: "Category", Type: FieldTypeText},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "set", "packet"},
	},
	"clothing": {
		ShopType: "clothing", Label: "Clothing Store", Icon: "👕", Category: "fashion",
		Attributes: []FieldSpec{
			{Key: "size", Label: "Size", Type: FieldTypeSelect, Required: true,
				Options: []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL", "Free Size"}},
			{Key: "color", Label: "Color", Type: FieldTypeText, Required: true},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "gender", Label: "Gender", Type: FieldTypeSelect,
				Options: []string{"Men", "Women", "Kids", "Unisex"}},
			{Key: "fabric", Label: "Fabric", Type: FieldTypeText},
		},
		LowStockThreshold: 3,
		Units:             []string{"piece", "set", "dozen"},
	},
	"footwear": {
		ShopType: "footwear", Label: "Footwear Shop", Icon: "👟", Category: "fashion",
		Attributes: []FieldSpec{
			{Key: "size", Label: "Size (UK/IN)", Type: FieldTypeSelect, Required: true,
				Options: []string{"5", "6", "7", "8", "9", "10", "11", "12"}},
			{Key: "color", Label: "Color", Type: FieldTypeText, Required: true},
			{Key: "material", Label: "Material", Type: FieldTypeText},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "gender", Label: "Gender", Type: FieldTypeSelect,
				Options: []string{"Men", "Women", "Kids", "Unisex"}},
		},
		LowStockThreshold: 2,
		Units:             []string{"pair", "piece"},
	},
	"boutique": {
		ShopType: "boutique", Label: "Boutique", Icon: "👗", Category: "fashion",
		Attributes: []FieldSpec{
			{Key: "size", Label: "Size", Type: FieldTypeText, Required: true},
			{Key: "color", Label: "Color", Type: FieldTypeText, Required: true},
			{Key: "fabric", Label: "Fabric", Type: FieldTypeText},
			{Key: "occasion", Label: "Occasion", Type: FieldTypeSelect,
				Options: []string{"Casual", "Formal", "Wedding", "Festival", "Party"}},
			{Key: "design_code", Label: "Design Code", Type: FieldTypeText},
		},
		LowStockThreshold: 2,
		Units:             []string{"piece", "set"},
	},
	"auto_parts": {
		ShopType: "auto_parts", Label: "Auto Parts Shop", Icon: "🔧", Category: "automotive",
		Attributes: []FieldSpec{
			{Key: "vehicle_model", Label: "Vehicle Model", Type: FieldTypeText, Required: true},
			{Key: "part_number", Label: "Part Number", Type: FieldTypeText, Required: true},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "compatibility", Label: "Compatible With", Type: FieldTypeText},
			{Key: "oem", Label: "OEM/Aftermarket", Type: FieldTypeSelect,
				Options: []string{"OEM", "Aftermarket", "Refurbished"}},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "set", "litre"},
	},
	"bike_repair": {
		ShopType: "bike_repair", Label: "Bike Repair Shop", Icon: "🏍️", Category: "automotive",
		Attributes: []FieldSpec{
			{Key: "bike_model", Label: "Bike Model", Type: FieldTypeText, Required: true},
			{Key: "part_number", Label: "Part Number", Type: FieldTypeText},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
		},
		LowStockThreshold: 3,
		Units:             []string{"piece", "set", "litre"},
	},
	"car_service": {
		ShopType: "car_service", Label: "Car Service Center", Icon: "🚗", Category: "automotive",
		Attributes: []FieldSpec{
			{Key: "car_model", Label: "Car Model", Type: FieldTypeText, Required: true},
			{Key: "part_number", Label: "Part Number", Type: FieldTypeText},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "service_type", Label: "Service Type", Type: FieldTypeSelect,
				Options: []string{"Engine", "Transmission", "Brakes", "Electrical", "Body", "Tyres", "AC"}},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "set", "litre", "kg"},
	},
	"restaurant": {
		ShopType: "restaurant", Label: "Restaurant", Icon: "🍽️", Category: "food",
		Attributes: []FieldSpec{
			{Key: "veg_nonveg", Label: "Veg/Non-Veg", Type: FieldTypeSelect, Required: true,
				Options: []string{"Veg", "Non-Veg", "Egg", "Vegan"}},
			{Key: "portion_size", Label: "Portion Size", Type: FieldTypeSelect,
				Options: []string{"Small", "Medium", "Large", "Full", "Half"}},
			{Key: "spice_level", Label: "Spice Level", Type: FieldTypeSelect,
				Options: []string{"Mild", "Medium", "Spicy", "Extra Spicy"}},
			{Key: "cuisine", Label: "Cuisine Type", Type: FieldTypeText},
		},
		LowStockThreshold: 5,
		Units:             []string{"plate", "piece", "litre", "kg"},
	},
	"street_food": {
		ShopType: "street_food", Label: "Street Food / Dhaba", Icon: "🌮", Category: "food",
		Attributes: []FieldSpec{
			{Key: "veg_nonveg", Label: "Veg/Non-Veg", Type: FieldTypeSelect, Required: true,
				Options: []string{"Veg", "Non-Veg", "Egg"}},
			{Key: "portion_size", Label: "Portion Size", Type: FieldTypeSelect,
				Options: []string{"Small", "Regular", "Large"}},
		},
		LowStockThreshold: 5,
		Units:             []string{"plate", "piece"},
	},
	"bakery": {
		ShopType: "bakery", Label: "Bakery", Icon: "🥐", Category: "food",
		Attributes: []FieldSpec{
			{Key: "expiry_date", Label: "Best Before", Type: FieldTypeDate, Required: true},
			{Key: "flavor", Label: "Flavor", Type: FieldTypeText},
			{Key: "weight", Label: "Weight (g)", Type: FieldTypeNumber},
			{Key: "eggless", Label: "Eggless", Type: FieldTypeSelect,
				Options: []string{"Yes", "No"}},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "kg", "dozen", "packet"},
	},
	"cafe": {
		ShopType: "cafe", Label: "Cafe / Coffee Shop", Icon: "☕", Category: "food",
		Attributes: []FieldSpec{
			{Key: "size", Label: "Cup Size", Type: FieldTypeSelect, Required: true,
				Options: []string{"Small", "Medium", "Large", "Extra Large"}},
			{Key: "hot_cold", Label: "Hot/Cold", Type: FieldTypeSelect,
				Options: []string{"Hot", "Cold", "Both"}},
			{Key: "dairy_free", Label: "Dairy-Free", Type: FieldTypeSelect,
				Options: []string{"Yes", "No", "Optional"}},
		},
		LowStockThreshold: 5,
		Units:             []string{"cup", "piece", "litre"},
	},
	"pharmacy": {
		ShopType: "pharmacy", Label: "Pharmacy", Icon: "💊", Category: "health",
		Attributes: []FieldSpec{
			{Key: "expiry_date", Label: "Expiry Date", Type: FieldTypeDate, Required: true},
			{Key: "dosage", Label: "Dosage", Type: FieldTypeText, Required: true},
			{Key: "manufacturer", Label: "Manufacturer", Type: FieldTypeText, Required: true},
			{Key: "prescription", Label: "Rx Required", Type: FieldTypeSelect, Required: true,
				Options: []string{"Yes", "No", "OTC"}},
			{Key: "salt_name", Label: "Salt/Generic", Type: FieldTypeText},
		},
		LowStockThreshold: 10,
		Units:             []string{"strip", "bottle", "tube", "piece", "packet"},
	},
	"medical_store": {
		ShopType: "medical_store", Label: "Medical Store", Icon: "🏥", Category: "health",
		Attributes: []FieldSpec{
			{Key: "expiry_date", Label: "Expiry Date", Type: FieldTypeDate, Required: true},
			{Key: "manufacturer", Label: "Manufacturer", Type: FieldTypeText, Required: true},
			{Key: "category", Label: "Category", Type: FieldTypeSelect,
				Options: []string{"Medicine", "Equipment", "Surgical", "Wellness", "Baby Care"}},
		},
		LowStockThreshold: 10,
		Units:             []string{"piece", "strip", "bottle", "packet"},
	},
	"hardware_store": {
		ShopType: "hardware_store", Label: "Hardware Store", Icon: "🔨", Category: "home",
		Attributes: []FieldSpec{
			{Key: "material", Label: "Material", Type: FieldTypeText},
			{Key: "usage_type", Label: "Usage Type", Type: FieldTypeText},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "size_spec", Label: "Size / Spec", Type: FieldTypeText},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "set", "kg", "metre", "litre", "bag"},
	},
	"electrical_shop": {
		ShopType: "electrical_shop", Label: "Electrical Shop", Icon: "⚡", Category: "home",
		Attributes: []FieldSpec{
			{Key: "wattage", Label: "Wattage/Rating", Type: FieldTypeText},
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "voltage", Label: "Voltage", Type: FieldTypeSelect,
				Options: []string{"5V", "12V", "24V", "110V", "220V", "240V"}},
			{Key: "warranty", Label: "Warranty", Type: FieldTypeText},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "metre", "set"},
	},
	"furniture_store": {
		ShopType: "furniture_store", Label: "Furniture Store", Icon: "🪑", Category: "home",
		Attributes: []FieldSpec{
			{Key: "material", Label: "Material", Type: FieldTypeText, Required: true},
			{Key: "dimensions", Label: "Dimensions", Type: FieldTypeText},
			{Key: "color", Label: "Color/Finish", Type: FieldTypeText},
			{Key: "assembly", Label: "Assembly Req'd", Type: FieldTypeSelect,
				Options: []string{"Yes", "No"}},
		},
		LowStockThreshold: 2,
		Units:             []string{"piece", "set"},
	},
	"mobile_shop": {
		ShopType: "mobile_shop", Label: "Mobile / Phone Shop", Icon: "📱", Category: "electronics",
		Attributes: []FieldSpec{
			{Key: "brand", Label: "Brand", Type: FieldTypeText, Required: true},
			{Key: "model", Label: "Model", Type: FieldTypeText, Required: true},
			{Key: "ram", Label: "RAM", Type: FieldTypeSelect,
				Options: []string{"2GB", "3GB", "4GB", "6GB", "8GB", "12GB", "16GB"}},
			{Key: "storage", Label: "Storage", Type: FieldTypeSelect,
				Options: []string{"32GB", "64GB", "128GB", "256GB", "512GB", "1TB"}},
			{Key: "color", Label: "Color", Type: FieldTypeText},
			{Key: "warranty", Label: "Warranty", Type: FieldTypeText},
		},
		LowStockThreshold: 3,
		Units:             []string{"piece"},
	},
	"electronics_store": {
		ShopType: "electronics_store", Label: "Electronics Store", Icon: "💻", Category: "electronics",
		Attributes: []FieldSpec{
			{Key: "brand", Label: "Brand", Type: FieldTypeText, Required: true},
			{Key: "model", Label: "Model No.", Type: FieldTypeText, Required: true},
			{Key: "warranty", Label: "Warranty", Type: FieldTypeText, Required: true},
			{Key: "voltage", Label: "Voltage", Type: FieldTypeText},
			{Key: "category", Label: "Category", Type: FieldTypeSelect,
				Options: []string{"TV", "Laptop", "Tablet", "Camera", "Audio", "AC", "Refrigerator", "Washing Machine", "Other"}},
		},
		LowStockThreshold: 3,
		Units:             []string{"piece", "set"},
	},
	"stationery": {
		ShopType: "stationery", Label: "Stationery Shop", Icon: "📚", Category: "others",
		Attributes: []FieldSpec{
			{Key: "brand", Label: "Brand", Type: FieldTypeText},
			{Key: "color", Label: "Color", Type: FieldTypeText},
			{Key: "size", Label: "Size", Type: FieldTypeText},
		},
		LowStockThreshold: 10,
		Units:             []string{"piece", "packet", "dozen", "set", "book"},
	},
	"gift_shop": {
		ShopType: "gift_shop", Label: "Gift Shop", Icon: "🎁", Category: "others",
		Attributes: []FieldSpec{
			{Key: "occasion", Label: "Occasion", Type: FieldTypeText},
			{Key: "color", Label: "Color", Type: FieldTypeText},
			{Key: "material", Label: "Material", Type: FieldTypeText},
		},
		LowStockThreshold: 3,
		Units:             []string{"piece", "set", "pack"},
	},
	"cosmetics": {
		ShopType: "cosmetics", Label: "Cosmetics / Beauty Store", Icon: "💄", Category: "others",
		Attributes: []FieldSpec{
			{Key: "shade", Label: "Shade/Color", Type: FieldTypeText},
			{Key: "skin_type", Label: "Skin Type", Type: FieldTypeSelect,
				Options: []string{"All Types", "Dry", "Oily", "Combination", "Sensitive", "Normal"}},
			{Key: "brand", Label: "Brand", Type: FieldTypeText, Required: true},
			{Key: "expiry_date", Label: "Expiry Date", Type: FieldTypeDate, Required: true},
			{Key: "volume", Label: "Volume/Weight", Type: FieldTypeText},
		},
		LowStockThreshold: 5,
		Units:             []string{"piece", "bottle", "tube", "set"},
	},
}

// TemplateFor returns the template for a shop type. Unknown types get a
// generic fallback with no dynamic attributes so shop creation never fails
// on an unrecognized type.
func TemplateFor(shopType string) Template {
	if t, ok := templates[shopType]; ok {
		return t
	}
	return Template{
		ShopType:          shopType,
		Label:             titleCase(shopType),
		Icon:              "🏪",
		Category:          "general",
		Attributes:        []FieldSpec{},
		LowStockThreshold: 5,
		Units:             []string{"piece"},
	}
}

// IsKnownShopType reports whether the shop type has a built-in template
func IsKnownShopType(shopType string) bool {
	_, ok := templates[shopType]
	return ok
}

// AllShopTypes returns the shop type catalog in registry order
func AllShopTypes() []ShopTypeInfo {
	result := make([]ShopTypeInfo, 0, len(shopTypeOrder))
	for _, key := range shopTypeOrder {
		t := templates[key]
		result = append(result, ShopTypeInfo{
			Type:     key,
			Label:    t.Label,
			Icon:     t.Icon,
			Category: t.Category,
		})
	}
	return result
}

// Categories groups the shop type catalog by category, preserving order
func Categories() map[string][]ShopTypeInfo {
	cats := make(map[string][]ShopTypeInfo)
	for _, info := range AllShopTypes() {
		cats[info.Category] = append(cats[info.Category], info)
	}
	return cats
}

// titleCase converts a snake_case shop type into a display label
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
