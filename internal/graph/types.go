package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// jsonScalar cho các trường dạng map tự do (payload cấu hình, details)
var jsonScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "JSON",
	Description: "Giá trị JSON tùy ý",
	Serialize:   func(value interface{}) interface{} { return value },
	ParseValue:  func(value interface{}) interface{} { return value },
	ParseLiteral: func(valueAST ast.Value) interface{} {
		return valueAST.GetValue()
	},
})

// newPageType tạo envelope phân trang {items, total, page, perPage}
func newPageType(name string, itemType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"items":   &graphql.Field{Type: graphql.NewList(itemType)},
			"total":   &graphql.Field{Type: graphql.Int},
			"page":    &graphql.Field{Type: graphql.Int},
			"perPage": &graphql.Field{Type: graphql.Int},
		},
	})
}

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"active":      &graphql.Field{Type: graphql.Boolean},
		"createdAt":   &graphql.Field{Type: graphql.String},
		"updatedAt":   &graphql.Field{Type: graphql.String},
	},
})

var productImageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductImage",
	Fields: graphql.Fields{
		"url":       &graphql.Field{Type: graphql.String},
		"storageId": &graphql.Field{Type: graphql.String},
		"isPrimary": &graphql.Field{Type: graphql.Boolean},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Int},
		"images":      &graphql.Field{Type: graphql.NewList(productImageType)},
		"categoryId":  &graphql.Field{Type: graphql.String},
		"tags":        &graphql.Field{Type: graphql.NewList(graphql.String)},
		"stock":       &graphql.Field{Type: graphql.Int},
		"stockStatus": &graphql.Field{Type: graphql.String},
		"weight":      &graphql.Field{Type: graphql.Int},
		"featured":    &graphql.Field{Type: graphql.Boolean},
		"status":      &graphql.Field{Type: graphql.String},
		"ratingAvg":   &graphql.Field{Type: graphql.Float},
		"ratingCount": &graphql.Field{Type: graphql.Int},
		"createdAt":   &graphql.Field{Type: graphql.String},
		"updatedAt":   &graphql.Field{Type: graphql.String},
	},
})

var productPageType = newPageType("ProductPage", productType)

var reviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Review",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"productId": &graphql.Field{Type: graphql.String},
		"userId":    &graphql.Field{Type: graphql.String},
		"userName":  &graphql.Field{Type: graphql.String},
		"rating":    &graphql.Field{Type: graphql.Int},
		"title":     &graphql.Field{Type: graphql.String},
		"body":      &graphql.Field{Type: graphql.String},
		"verified":  &graphql.Field{Type: graphql.Boolean},
		"createdAt": &graphql.Field{Type: graphql.String},
		"updatedAt": &graphql.Field{Type: graphql.String},
	},
})

var reviewPageType = newPageType("ReviewPage", reviewType)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"name":            &graphql.Field{Type: graphql.String},
		"email":           &graphql.Field{Type: graphql.String},
		"phone":           &graphql.Field{Type: graphql.String},
		"role":            &graphql.Field{Type: graphql.String},
		"newsletterOptIn": &graphql.Field{Type: graphql.Boolean},
		"createdAt":       &graphql.Field{Type: graphql.String},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.String},
		"user":  &graphql.Field{Type: userType},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"productId": &graphql.Field{Type: graphql.String},
		"name":      &graphql.Field{Type: graphql.String},
		"slug":      &graphql.Field{Type: graphql.String},
		"image":     &graphql.Field{Type: graphql.String},
		"unitPrice": &graphql.Field{Type: graphql.Int},
		"qty":       &graphql.Field{Type: graphql.Int},
		"lineTotal": &graphql.Field{Type: graphql.Int},
	},
})

var amountsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderAmounts",
	Fields: graphql.Fields{
		"subtotal": &graphql.Field{Type: graphql.Int},
		"discount": &graphql.Field{Type: graphql.Int},
		"shipping": &graphql.Field{Type: graphql.Int},
		"tax":      &graphql.Field{Type: graphql.Int},
		"total":    &graphql.Field{Type: graphql.Int},
	},
})

var addressType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderAddress",
	Fields: graphql.Fields{
		"name":       &graphql.Field{Type: graphql.String},
		"phone":      &graphql.Field{Type: graphql.String},
		"line1":      &graphql.Field{Type: graphql.String},
		"line2":      &graphql.Field{Type: graphql.String},
		"city":       &graphql.Field{Type: graphql.String},
		"state":      &graphql.Field{Type: graphql.String},
		"postalCode": &graphql.Field{Type: graphql.String},
		"country":    &graphql.Field{Type: graphql.String},
	},
})

var paymentInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PaymentInfo",
	Fields: graphql.Fields{
		"method":   &graphql.Field{Type: graphql.String},
		"intentId": &graphql.Field{Type: graphql.String},
		"paidAt":   &graphql.Field{Type: graphql.String},
	},
})

var trackingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TrackingInfo",
	Fields: graphql.Fields{
		"carrier": &graphql.Field{Type: graphql.String},
		"number":  &graphql.Field{Type: graphql.String},
		"url":     &graphql.Field{Type: graphql.String},
	},
})

var refundInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RefundInfo",
	Fields: graphql.Fields{
		"amount": &graphql.Field{Type: graphql.Int},
		"reason": &graphql.Field{Type: graphql.String},
		"at":     &graphql.Field{Type: graphql.String},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"orderNumber":     &graphql.Field{Type: graphql.String},
		"userId":          &graphql.Field{Type: graphql.String},
		"guestId":         &graphql.Field{Type: graphql.String},
		"isGuest":         &graphql.Field{Type: graphql.Boolean},
		"email":           &graphql.Field{Type: graphql.String},
		"items":           &graphql.Field{Type: graphql.NewList(orderItemType)},
		"amounts":         &graphql.Field{Type: amountsType},
		"couponCode":      &graphql.Field{Type: graphql.String},
		"shippingAddress": &graphql.Field{Type: addressType},
		"billingAddress":  &graphql.Field{Type: addressType},
		"status":          &graphql.Field{Type: graphql.String},
		"payment":         &graphql.Field{Type: paymentInfoType},
		"tracking":        &graphql.Field{Type: trackingType},
		"refund":          &graphql.Field{Type: refundInfoType},
		"notes":           &graphql.Field{Type: graphql.NewList(graphql.String)},
		"createdAt":       &graphql.Field{Type: graphql.String},
		"updatedAt":       &graphql.Field{Type: graphql.String},
	},
})

var orderPageType = newPageType("OrderPage", orderType)

var quoteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderQuote",
	Fields: graphql.Fields{
		"items":    &graphql.Field{Type: graphql.NewList(orderItemType)},
		"amounts":  &graphql.Field{Type: amountsType},
		"currency": &graphql.Field{Type: graphql.String},
		"etaDays":  &graphql.Field{Type: graphql.Int},
	},
})

var settingsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StoreSettings",
	Fields: graphql.Fields{
		"storeName":             &graphql.Field{Type: graphql.String},
		"supportEmail":          &graphql.Field{Type: graphql.String},
		"currency":              &graphql.Field{Type: graphql.String},
		"taxRate":               &graphql.Field{Type: graphql.Float},
		"freeShippingThreshold": &graphql.Field{Type: graphql.Int},
		"paymentMethods":        &graphql.Field{Type: jsonScalar},
		"maintenanceMode":       &graphql.Field{Type: graphql.Boolean},
	},
})

var shippingZoneType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ShippingZone",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"name":      &graphql.Field{Type: graphql.String},
		"countries": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"isDefault": &graphql.Field{Type: graphql.Boolean},
		"active":    &graphql.Field{Type: graphql.Boolean},
	},
})

var couponValidationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CouponValidation",
	Fields: graphql.Fields{
		"code":     &graphql.Field{Type: graphql.String},
		"type":     &graphql.Field{Type: graphql.String},
		"value":    &graphql.Field{Type: graphql.Int},
		"discount": &graphql.Field{Type: graphql.Int},
	},
})

var subscriptionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "NewsletterSubscription",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.String},
		"email":          &graphql.Field{Type: graphql.String},
		"active":         &graphql.Field{Type: graphql.Boolean},
		"source":         &graphql.Field{Type: graphql.String},
		"tags":           &graphql.Field{Type: graphql.NewList(graphql.String)},
		"unsubscribedAt": &graphql.Field{Type: graphql.String},
	},
})

var orderItemInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"qty":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var addressInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AddressInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"line1":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"line2":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"state":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"postalCode": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"country":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})
