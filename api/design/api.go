package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("fortiercars", func() {
	Title("Ben Fortier Car Sales API")
	Description("Backend API for the Ben Fortier Car Sales dealership website")
	Version("1.0.0")
	Server("fortiercars", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Status and health
var _ = Service("api", func() {
	Description("API status")
	Method("status", func() {
		Result(APIStatus)
		HTTP(func() {
			GET("/api/")
			Response(StatusOK)
		})
	})
})

var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(Health)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var APIStatus = Type("APIStatus", func() {
	Attribute("message", String, "Service name", func() {
		Example("Ben Fortier Car Sales API")
	})
	Attribute("status", String, "Service status", func() {
		Example("operational")
	})
	Required("message", "status")
})

var Health = Type("Health", func() {
	Attribute("status", String, "Overall status", func() {
		Enum("healthy", "unhealthy")
	})
	Attribute("service", String, "Service name")
	Attribute("database", String, "Database reachability", func() {
		Enum("connected", "disconnected")
	})
	Required("status", "service", "database")
})

// Contact form
var _ = Service("contact", func() {
	Description("Contact form submissions")
	Error("not_found")
	Error("internal_error", ErrorResult, func() {
		Fault()
	})
	HTTP(func() {
		Response("internal_error", StatusInternalServerError)
	})

	Method("submit", func() {
		Description("Submit the public contact form")
		Payload(ContactSubmissionCreate)
		Result(ContactSubmission)
		HTTP(func() {
			POST("/api/contact")
			Response(StatusOK)
		})
	})

	Method("list", func() {
		Description("List contact submissions, newest first")
		Payload(func() {
			Attribute("status", String, "Status filter", func() {
				Enum("new", "contacted", "closed")
			})
			Attribute("limit", Int, "Maximum number of records", func() {
				Minimum(1)
			})
		})
		Result(ArrayOf(ContactSubmission))
		HTTP(func() {
			GET("/api/contact")
			Param("status")
			Param("limit")
			Response(StatusOK)
		})
	})

	Method("update", func() {
		Description("Change the status or notes of a submission")
		Payload(func() {
			Attribute("id", String, "Submission ID")
			Attribute("status", String, "New status", func() {
				Enum("new", "contacted", "closed")
			})
			Attribute("notes", String, "Admin notes")
			Required("id")
		})
		Result(ContactSubmission)
		Error("not_found")
		HTTP(func() {
			PUT("/api/contact/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})
})

var ContactSubmissionCreate = Type("ContactSubmissionCreate", func() {
	Attribute("full_name", String, "Full name", func() {
		MinLength(1)
		MaxLength(100)
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		Example("buyer@example.com")
	})
	Attribute("phone", String, "Phone number", func() {
		MaxLength(20)
	})
	Attribute("message", String, "Message", func() {
		MinLength(1)
		MaxLength(2000)
	})
	Required("full_name", "email", "message")
})

var ContactSubmission = Type("ContactSubmission", func() {
	Attribute("id", String, "Submission ID")
	Attribute("full_name", String, "Full name")
	Attribute("email", String, "Email address")
	Attribute("phone", String, "Phone number")
	Attribute("message", String, "Message")
	Attribute("submitted_at", String, "Submission time", func() {
		Format(FormatDateTime)
	})
	Attribute("status", String, "Follow-up status", func() {
		Enum("new", "contacted", "closed")
	})
	Attribute("notes", String, "Admin notes")
	Required("id", "full_name", "email", "message", "submitted_at", "status")
})

// Car inquiries
var _ = Service("inquiries", func() {
	Description("Inquiries about a specific vehicle")
	Error("not_found")
	Error("internal_error", ErrorResult, func() {
		Fault()
	})
	HTTP(func() {
		Response("internal_error", StatusInternalServerError)
	})

	Method("submit", func() {
		Description("Submit an inquiry about a vehicle")
		Payload(CarInquiryCreate)
		Result(CarInquiry)
		HTTP(func() {
			POST("/api/inquiries")
			Response(StatusOK)
		})
	})

	Method("list", func() {
		Description("List inquiries, newest first")
		Payload(func() {
			Attribute("status", String, "Status filter", func() {
				Enum("new", "contacted", "scheduled", "closed")
			})
			Attribute("car_id", String, "Vehicle filter")
			Attribute("limit", Int, "Maximum number of records", func() {
				Minimum(1)
			})
		})
		Result(ArrayOf(CarInquiry))
		HTTP(func() {
			GET("/api/inquiries")
			Param("status")
			Param("car_id")
			Param("limit")
			Response(StatusOK)
		})
	})

	Method("update", func() {
		Description("Change the status of an inquiry")
		Payload(func() {
			Attribute("id", String, "Inquiry ID")
			Attribute("status", String, "New status", func() {
				Enum("new", "contacted", "scheduled", "closed")
			})
			Required("id")
		})
		Result(CarInquiry)
		Error("not_found")
		HTTP(func() {
			PUT("/api/inquiries/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})
})

var CarInquiryCreate = Type("CarInquiryCreate", func() {
	Attribute("car_id", String, "Vehicle ID, not checked against the catalog")
	Attribute("car_type", String, "Vehicle category", func() {
		Enum("new", "used")
	})
	Attribute("customer_name", String, "Customer name", func() {
		MinLength(1)
		MaxLength(100)
	})
	Attribute("customer_email", String, "Customer email", func() {
		Format(FormatEmail)
	})
	Attribute("customer_phone", String, "Customer phone", func() {
		MaxLength(20)
	})
	Attribute("inquiry_type", String, "Kind of inquiry", func() {
		Enum("details", "test_drive", "purchase")
	})
	Attribute("message", String, "Message", func() {
		MaxLength(1000)
	})
	Required("car_id", "car_type", "customer_name", "customer_email", "inquiry_type")
})

var CarInquiry = Type("CarInquiry", func() {
	Attribute("id", String, "Inquiry ID")
	Attribute("car_id", String, "Vehicle ID")
	Attribute("car_type", String, "Vehicle category", func() {
		Enum("new", "used")
	})
	Attribute("customer_name", String, "Customer name")
	Attribute("customer_email", String, "Customer email")
	Attribute("customer_phone", String, "Customer phone")
	Attribute("inquiry_type", String, "Kind of inquiry", func() {
		Enum("details", "test_drive", "purchase")
	})
	Attribute("message", String, "Message")
	Attribute("submitted_at", String, "Submission time", func() {
		Format(FormatDateTime)
	})
	Attribute("status", String, "Follow-up status", func() {
		Enum("new", "contacted", "scheduled", "closed")
	})
	Required("id", "car_id", "car_type", "customer_name", "customer_email", "inquiry_type", "submitted_at", "status")
})

// Testimonials
var _ = Service("testimonials", func() {
	Description("Customer reviews with moderation")
	Error("not_found")
	Error("internal_error", ErrorResult, func() {
		Fault()
	})
	HTTP(func() {
		Response("internal_error", StatusInternalServerError)
	})

	Method("list", func() {
		Description("List testimonials, newest first")
		Payload(func() {
			Attribute("approved_only", Boolean, "Only approved testimonials", func() {
				Default(true)
			})
		})
		Result(ArrayOf(Testimonial))
		HTTP(func() {
			GET("/api/testimonials")
			Param("approved_only")
			Response(StatusOK)
		})
	})

	Method("submit", func() {
		Description("Submit a testimonial for moderation")
		Payload(TestimonialCreate)
		Result(Testimonial)
		HTTP(func() {
			POST("/api/testimonials")
			Response(StatusOK)
		})
	})

	Method("approve", func() {
		Description("Approve or unapprove a testimonial")
		Payload(func() {
			Attribute("id", String, "Testimonial ID")
			Attribute("is_approved", Boolean, "Approval flag")
			Required("id", "is_approved")
		})
		Result(Testimonial)
		Error("not_found")
		HTTP(func() {
			PUT("/api/testimonials/{id}/approve")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})
})

var TestimonialCreate = Type("TestimonialCreate", func() {
	Attribute("name", String, "Reviewer name", func() {
		MinLength(1)
		MaxLength(100)
	})
	Attribute("email", String, "Reviewer email", func() {
		Format(FormatEmail)
	})
	Attribute("image_url", String, "Reviewer photo")
	Attribute("rating", Int, "Star rating", func() {
		Minimum(1)
		Maximum(5)
	})
	Attribute("quote", String, "Review text", func() {
		MinLength(10)
		MaxLength(1000)
	})
	Attribute("car_purchased", String, "Vehicle bought", func() {
		MaxLength(100)
	})
	Attribute("purchase_date", String, "Purchase time", func() {
		Format(FormatDateTime)
	})
	Required("name", "email", "rating", "quote")
})

var Testimonial = Type("Testimonial", func() {
	Attribute("id", String, "Testimonial ID")
	Attribute("name", String, "Reviewer name")
	Attribute("email", String, "Reviewer email")
	Attribute("image_url", String, "Reviewer photo")
	Attribute("rating", Int, "Star rating")
	Attribute("quote", String, "Review text")
	Attribute("car_purchased", String, "Vehicle bought")
	Attribute("purchase_date", String, "Purchase time", func() {
		Format(FormatDateTime)
	})
	Attribute("is_approved", Boolean, "Shown on the public site")
	Attribute("created_at", String, "Submission time", func() {
		Format(FormatDateTime)
	})
	Attribute("approved_at", String, "Last approval time", func() {
		Format(FormatDateTime)
	})
	Required("id", "name", "email", "rating", "quote", "is_approved", "created_at")
})

// Vehicle catalog
var _ = Service("vehicles", func() {
	Description("Vehicle catalog")
	Error("not_found")
	Error("internal_error", ErrorResult, func() {
		Fault()
	})
	HTTP(func() {
		Response("internal_error", StatusInternalServerError)
	})

	Method("list", func() {
		Description("List vehicles, newest model year first")
		Payload(func() {
			Attribute("category", String, "Category filter", func() {
				Enum("new", "used")
			})
			Attribute("available_only", Boolean, "Only available vehicles", func() {
				Default(true)
			})
			Attribute("featured_only", Boolean, "Only featured vehicles", func() {
				Default(false)
			})
			Attribute("limit", Int, "Maximum number of records", func() {
				Minimum(1)
			})
		})
		Result(ArrayOf(Vehicle))
		HTTP(func() {
			GET("/api/vehicles")
			Param("category")
			Param("available_only")
			Param("featured_only")
			Param("limit")
			Response(StatusOK)
		})
	})

	Method("get", func() {
		Description("Get a vehicle by ID")
		Payload(func() {
			Attribute("id", String, "Vehicle ID")
			Required("id")
		})
		Result(Vehicle)
		Error("not_found")
		HTTP(func() {
			GET("/api/vehicles/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})

	Method("create", func() {
		Description("Add a vehicle to the catalog")
		Payload(VehicleCreate)
		Result(Vehicle)
		HTTP(func() {
			POST("/api/vehicles")
			Response(StatusOK)
		})
	})

	Method("update", func() {
		Description("Change some fields of a vehicle")
		Payload(VehicleUpdate)
		Result(Vehicle)
		Error("not_found")
		HTTP(func() {
			PUT("/api/vehicles/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})
})

var VehicleCreate = Type("VehicleCreate", func() {
	Attribute("year", Int, "Model year", func() {
		Minimum(1990)
		Maximum(2030)
	})
	Attribute("brand", String, "Brand", func() {
		MinLength(1)
		MaxLength(50)
	})
	Attribute("model", String, "Model", func() {
		MinLength(1)
		MaxLength(50)
	})
	Attribute("type", String, "Body type", func() {
		MaxLength(50)
	})
	Attribute("category", String, "Category", func() {
		Enum("new", "used")
	})
	Attribute("image_url", String, "Photo")
	Attribute("features", String, "Feature list", func() {
		MaxLength(500)
	})
	Attribute("description", String, "Description", func() {
		MaxLength(1000)
	})
	Attribute("price", String, "Display price", func() {
		MaxLength(50)
		Example("$42,500")
	})
	Attribute("mileage", String, "Display mileage", func() {
		MaxLength(20)
	})
	Attribute("is_featured", Boolean, "Featured on the home page", func() {
		Default(false)
	})
	Required("year", "brand", "model", "type", "category", "image_url", "features", "description", "price")
})

var VehicleUpdate = Type("VehicleUpdate", func() {
	Attribute("id", String, "Vehicle ID")
	Attribute("year", Int, "Model year", func() {
		Minimum(1990)
		Maximum(2030)
	})
	Attribute("brand", String, "Brand", func() {
		MinLength(1)
		MaxLength(50)
	})
	Attribute("model", String, "Model", func() {
		MinLength(1)
		MaxLength(50)
	})
	Attribute("type", String, "Body type", func() {
		MaxLength(50)
	})
	Attribute("category", String, "Category", func() {
		Enum("new", "used")
	})
	Attribute("image_url", String, "Photo")
	Attribute("features", String, "Feature list", func() {
		MaxLength(500)
	})
	Attribute("description", String, "Description", func() {
		MaxLength(1000)
	})
	Attribute("price", String, "Display price", func() {
		MaxLength(50)
	})
	Attribute("mileage", String, "Display mileage", func() {
		MaxLength(20)
	})
	Attribute("is_available", Boolean, "Listed for sale")
	Attribute("is_featured", Boolean, "Featured on the home page")
	Required("id")
})

var Vehicle = Type("Vehicle", func() {
	Attribute("id", String, "Vehicle ID")
	Attribute("year", Int, "Model year")
	Attribute("brand", String, "Brand")
	Attribute("model", String, "Model")
	Attribute("type", String, "Body type")
	Attribute("category", String, "Category", func() {
		Enum("new", "used")
	})
	Attribute("image_url", String, "Photo")
	Attribute("features", String, "Feature list")
	Attribute("description", String, "Description")
	Attribute("price", String, "Display price")
	Attribute("mileage", String, "Display mileage")
	Attribute("is_available", Boolean, "Listed for sale")
	Attribute("is_featured", Boolean, "Featured on the home page")
	Attribute("created_at", String, "Creation time", func() {
		Format(FormatDateTime)
	})
	Attribute("updated_at", String, "Last update time", func() {
		Format(FormatDateTime)
	})
	Required("id", "year", "brand", "model", "type", "category", "image_url", "features",
		"description", "price", "is_available", "is_featured", "created_at", "updated_at")
})

// Admin dashboard
var _ = Service("dashboard", func() {
	Description("Admin dashboard")
	Error("internal_error", ErrorResult, func() {
		Fault()
	})
	HTTP(func() {
		Response("internal_error", StatusInternalServerError)
	})

	Method("stats", func() {
		Description("Aggregate counts across all collections")
		Result(DashboardStats)
		HTTP(func() {
			GET("/api/dashboard/stats")
			Response(StatusOK)
		})
	})
})

var DashboardStats = Type("DashboardStats", func() {
	Attribute("total_contacts", Int64, "All contact submissions")
	Attribute("total_inquiries", Int64, "All inquiries")
	Attribute("total_testimonials", Int64, "Approved testimonials")
	Attribute("total_vehicles", Int64, "Available vehicles")
	Attribute("pending_testimonials", Int64, "Testimonials awaiting approval")
	Attribute("new_contacts_today", Int64, "Contact submissions since midnight UTC")
	Attribute("new_inquiries_today", Int64, "Inquiries since midnight UTC")
	Required("total_contacts", "total_inquiries", "total_testimonials", "total_vehicles",
		"pending_testimonials", "new_contacts_today", "new_inquiries_today")
})
