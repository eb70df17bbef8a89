package examples

import "go.eggybyte.com/netgen/internal/descriptor"

func minimal() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:     "MinimalAPI",
		Kind:     descriptor.KindWebAPI,
		Provider: descriptor.ProviderSQLServer,
		Features: descriptor.Features{Swagger: true, CORS: true},
	}
}

func basic() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "BasicCrudAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderSQLite,
		ConnectionString: "Data Source=BasicCrud.db",
		Features:         allFeatures(false),
		Entities: []descriptor.EntityDescriptor{
			entity("User",
				key("Id"),
				str("Email", 100, true),
				str("Name", 50, true),
				req("CreatedDate", tDateTime),
			),
		},
	}
}

func full() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "FullFeaturedAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderSQLServer,
		ConnectionString: localDB("FullFeaturedDb"),
		Features:         allFeatures(true),
		Entities: []descriptor.EntityDescriptor{
			entity("Customer",
				key("Id"),
				str("Email", 100, true),
				str("FirstName", 50, true),
				str("LastName", 50, true),
				str("Phone", 20, false),
				str("Address", 500, false),
				str("City", 100, false),
				str("PostalCode", 10, false),
				str("Country", 50, false),
				opt("DateOfBirth", tDateTime),
				req("IsActive", tBool),
				req("CreatedDate", tDateTime),
				opt("LastModifiedDate", tDateTime),
			),
			entity("Order",
				key("Id"),
				str("OrderNumber", 20, true),
				fk("CustomerId", "Customer", true),
				req("OrderDate", tDateTime),
				opt("RequiredDate", tDateTime),
				opt("ShippedDate", tDateTime),
				str("Status", 20, true),
				req("SubTotal", tDecimal),
				req("TaxAmount", tDecimal),
				req("TotalAmount", tDecimal),
				str("ShippingAddress", 500, true),
				str("Notes", 1000, false),
				req("CreatedDate", tDateTime),
			),
			entity("Product",
				key("Id"),
				str("Name", 200, true),
				str("Description", 2000, false),
				str("SKU", 50, true),
				req("Price", tDecimal),
				req("Cost", tDecimal),
				req("Stock", tInt),
				req("MinStock", tInt),
				opt("MaxStock", tInt),
				opt("Weight", tDecimal),
				str("Dimensions", 100, false),
				str("Category", 100, false),
				str("Brand", 100, false),
				req("IsActive", tBool),
				req("IsDiscontinued", tBool),
				req("CreatedDate", tDateTime),
				opt("LastModifiedDate", tDateTime),
			),
			entity("OrderItem",
				key("Id"),
				fk("OrderId", "Order", true),
				fk("ProductId", "Product", true),
				req("Quantity", tInt),
				req("UnitPrice", tDecimal),
				opt("Discount", tDecimal),
				req("TotalPrice", tDecimal),
				req("CreatedDate", tDateTime),
			),
		},
	}
}

func mysql() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "MySQLBlogAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderMySQL,
		ConnectionString: "Server=localhost;Database=BlogDb;Uid=bloguser;Pwd=blogpassword;",
		Features:         allFeatures(false),
		Entities: []descriptor.EntityDescriptor{
			entity("Article",
				key("Id"),
				str("Title", 200, true),
				req("Content", tString),
				str("AuthorEmail", 100, true),
				opt("PublishedDate", tDateTime),
				req("IsPublished", tBool),
				opt("ViewCount", tInt),
				req("CreatedDate", tDateTime),
			),
		},
	}
}

func postgresql() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "PostgreSQLHRAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderPostgreSQL,
		ConnectionString: "Host=localhost;Database=HRDb;Username=hruser;Password=hrpassword",
		Features:         allFeatures(false),
		Entities: []descriptor.EntityDescriptor{
			entity("Employee",
				key("Id"),
				str("EmployeeNumber", 20, true),
				str("FirstName", 50, true),
				str("LastName", 50, true),
				str("Email", 100, true),
				str("Department", 100, true),
				str("Position", 100, true),
				req("Salary", tDecimal),
				req("HireDate", tDateTime),
				req("IsActive", tBool),
			),
		},
	}
}

func ecommerce() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "ECommerceAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderSQLServer,
		ConnectionString: localDB("ECommerceDb"),
		Features:         allFeatures(false),
		Entities: []descriptor.EntityDescriptor{
			entity("User",
				key("Id"),
				str("Email", 100, true),
				str("FirstName", 50, true),
				str("LastName", 50, true),
				str("PasswordHash", 255, true),
				str("PhoneNumber", 20, false),
				opt("DateOfBirth", tDateTime),
				req("CreatedDate", tDateTime),
				opt("LastLoginDate", tDateTime),
				req("IsActive", tBool),
				req("IsEmailConfirmed", tBool),
			),
			entity("Category",
				key("Id"),
				str("Name", 100, true),
				str("Description", 500, false),
				str("ImageUrl", 255, false),
				req("IsActive", tBool),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
			entity("Product",
				key("Id"),
				str("Name", 200, true),
				str("Description", 1000, false),
				req("Price", tDecimal),
				opt("ComparePrice", tDecimal),
				str("SKU", 50, true),
				str("Barcode", 50, false),
				req("Stock", tInt),
				req("MinStock", tInt),
				opt("Weight", tDecimal),
				str("ImageUrl", 255, false),
				fk("CategoryId", "Category", true),
				req("IsActive", tBool),
				req("IsFeatured", tBool),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
			entity("Order",
				key("Id"),
				str("OrderNumber", 20, true),
				fk("UserId", "User", true),
				str("Status", 20, true),
				req("SubTotal", tDecimal),
				req("TaxAmount", tDecimal),
				req("ShippingAmount", tDecimal),
				opt("DiscountAmount", tDecimal),
				req("TotalAmount", tDecimal),
				str("ShippingAddress", 500, true),
				str("BillingAddress", 500, true),
				str("PaymentMethod", 50, true),
				str("PaymentStatus", 20, true),
				str("Notes", 1000, false),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
				opt("ShippedDate", tDateTime),
				opt("DeliveredDate", tDateTime),
			),
			entity("OrderItem",
				key("Id"),
				fk("OrderId", "Order", true),
				fk("ProductId", "Product", true),
				str("ProductName", 200, true),
				str("ProductSKU", 50, true),
				req("UnitPrice", tDecimal),
				req("Quantity", tInt),
				req("TotalPrice", tDecimal),
				req("CreatedDate", tDateTime),
			),
			entity("Review",
				key("Id"),
				fk("ProductId", "Product", true),
				fk("UserId", "User", true),
				req("Rating", tInt),
				str("Title", 200, true),
				str("Comment", 2000, false),
				req("IsApproved", tBool),
				opt("IsHelpful", tInt),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
		},
	}
}

func blog() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "BlogAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderSQLServer,
		ConnectionString: localDB("BlogDb"),
		Features:         allFeatures(true),
		Entities: []descriptor.EntityDescriptor{
			entity("Author",
				key("Id"),
				str("Email", 100, true),
				str("Username", 50, true),
				str("FirstName", 50, true),
				str("LastName", 50, true),
				str("Bio", 1000, false),
				str("AvatarUrl", 255, false),
				str("Website", 255, false),
				str("TwitterHandle", 50, false),
				req("IsActive", tBool),
				req("CreatedDate", tDateTime),
				opt("LastLoginDate", tDateTime),
			),
			entity("BlogPost",
				key("Id"),
				str("Title", 200, true),
				str("Slug", 250, true),
				req("Content", tString),
				str("Excerpt", 500, false),
				str("FeaturedImageUrl", 255, false),
				fk("AuthorId", "Author", true),
				str("Status", 20, true),
				opt("ViewCount", tInt),
				opt("LikeCount", tInt),
				req("IsCommentEnabled", tBool),
				req("IsFeatured", tBool),
				str("MetaTitle", 200, false),
				str("MetaDescription", 300, false),
				opt("PublishedDate", tDateTime),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
			entity("Comment",
				key("Id"),
				fk("BlogPostId", "BlogPost", true),
				fk("ParentCommentId", "Comment", false),
				str("AuthorName", 100, true),
				str("AuthorEmail", 100, true),
				str("AuthorWebsite", 255, false),
				str("Content", 2000, true),
				req("IsApproved", tBool),
				str("IpAddress", 45, false),
				str("UserAgent", 500, false),
				req("CreatedDate", tDateTime),
			),
			entity("Tag",
				key("Id"),
				str("Name", 50, true),
				str("Slug", 60, true),
				str("Description", 500, false),
				str("Color", 7, false),
				opt("PostCount", tInt),
				req("CreatedDate", tDateTime),
			),
		},
	}
}

func inventory() *descriptor.ProjectDescriptor {
	return &descriptor.ProjectDescriptor{
		Name:             "InventoryAPI",
		Kind:             descriptor.KindWebAPI,
		IncludeDatabase:  true,
		Provider:         descriptor.ProviderSQLServer,
		ConnectionString: localDB("InventoryDb"),
		Features:         allFeatures(false),
		Entities: []descriptor.EntityDescriptor{
			entity("Supplier",
				key("Id"),
				str("CompanyName", 200, true),
				str("ContactName", 100, true),
				str("ContactEmail", 100, true),
				str("ContactPhone", 20, false),
				str("Address", 500, false),
				str("City", 100, false),
				str("State", 50, false),
				str("ZipCode", 10, false),
				str("Country", 50, false),
				str("Website", 255, false),
				str("TaxId", 50, false),
				req("IsActive", tBool),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
			entity("Warehouse",
				key("Id"),
				str("Name", 100, true),
				str("Code", 10, true),
				str("Address", 500, true),
				str("City", 100, true),
				str("State", 50, true),
				str("ZipCode", 10, true),
				str("Country", 50, true),
				str("ManagerName", 100, false),
				str("ManagerEmail", 100, false),
				str("ManagerPhone", 20, false),
				req("IsActive", tBool),
				req("CreatedDate", tDateTime),
			),
			entity("Item",
				key("Id"),
				str("Name", 200, true),
				str("Description", 1000, false),
				str("SKU", 50, true),
				str("Barcode", 50, false),
				str("Category", 100, false),
				str("Brand", 100, false),
				str("UnitOfMeasure", 20, true),
				req("UnitCost", tDecimal),
				req("SalePrice", tDecimal),
				opt("Weight", tDecimal),
				str("Dimensions", 100, false),
				fk("SupplierId", "Supplier", true),
				req("MinStockLevel", tInt),
				req("MaxStockLevel", tInt),
				req("ReorderPoint", tInt),
				req("IsActive", tBool),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
			entity("Stock",
				key("Id"),
				fk("ItemId", "Item", true),
				fk("WarehouseId", "Warehouse", true),
				req("QuantityOnHand", tInt),
				req("QuantityReserved", tInt),
				req("QuantityAvailable", tInt),
				str("Location", 50, false),
				opt("LastCountDate", tDateTime),
				opt("LastMovementDate", tDateTime),
				req("CreatedDate", tDateTime),
				opt("UpdatedDate", tDateTime),
			),
		},
	}
}
