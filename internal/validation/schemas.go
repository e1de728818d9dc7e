package validation

func floatPtr(f float64) *float64 { return &f }

// UserSchema gates user creation.
var UserSchema = Schema{
	Resource: "user",
	Message:  "Fullname, email, and password are required.",
	Rules: []Rule{
		{Field: "fullname", Policy: PolicyNonEmpty, Type: TypeString},
		{Field: "email", Policy: PolicyNonEmpty, Type: TypeString, Format: FormatEmail},
		{Field: "password", Policy: PolicyNonEmpty, Type: TypeString},
		{Field: "role", Policy: PolicyOptional, Type: TypeString, Enum: []string{"user", "admin"}},
	},
}

// CategorySchema gates category creation and update; both require a name.
var CategorySchema = Schema{
	Resource: "category",
	Message:  "Missing required fields",
	Rules: []Rule{
		{Field: "name", Policy: PolicyNonEmpty, Type: TypeString},
	},
}

// ProductCreateSchema gates product creation. Price and stock use the
// non-empty policy, so zero is rejected as missing here.
var ProductCreateSchema = Schema{
	Resource: "product",
	Message:  "All required fields must be provided.",
	Rules: []Rule{
		{Field: "title", Policy: PolicyNonEmpty, Type: TypeString},
		{Field: "description", Policy: PolicyNonEmpty, Type: TypeString},
		{Field: "price", Policy: PolicyNonEmpty, Type: TypeNumber, Min: floatPtr(0)},
		{Field: "stock", Policy: PolicyNonEmpty, Type: TypeInteger, Min: floatPtr(0)},
		{Field: "category", Policy: PolicyNonEmpty, Type: TypeString},
		{Field: "imageUrl", Policy: PolicyOptional, Type: TypeString},
	},
}

// ProductUpdateSchema gates product update. Every field is optional and only
// type-checked when supplied; zero price or stock is a valid update value,
// unlike on create.
var ProductUpdateSchema = Schema{
	Resource: "product",
	Rules: []Rule{
		{Field: "title", Policy: PolicyOptional, Type: TypeString},
		{Field: "description", Policy: PolicyOptional, Type: TypeString},
		{Field: "price", Policy: PolicyOptional, Type: TypeNumber, Min: floatPtr(0)},
		{Field: "stock", Policy: PolicyOptional, Type: TypeInteger, Min: floatPtr(0)},
		{Field: "category", Policy: PolicyOptional, Type: TypeString},
		{Field: "imageUrl", Policy: PolicyOptional, Type: TypeString},
	},
}
