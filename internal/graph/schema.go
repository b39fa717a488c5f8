package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// NewSchema dựng schema GraphQL trên Resolver. Mutation quản trị
// không có ở đây, admin chỉ đi qua REST.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: productPageType,
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"tag":      &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"sort":     &graphql.ArgumentConfig{Type: graphql.String},
					"minPrice": &graphql.ArgumentConfig{Type: graphql.Int},
					"maxPrice": &graphql.ArgumentConfig{Type: graphql.Int},
					"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"page":     &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveProducts,
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.String},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveProduct,
			},
			"categories": &graphql.Field{
				Type:    graphql.NewList(categoryType),
				Resolve: r.resolveCategories,
			},
			"category": &graphql.Field{
				Type: categoryType,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.String},
					"slug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveCategory,
			},
			"reviews": &graphql.Field{
				Type: reviewPageType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"page":      &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveReviews,
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
			"myOrders": &graphql.Field{
				Type: orderPageType,
				Args: graphql.FieldConfigArgument{
					"page":  &graphql.ArgumentConfig{Type: graphql.Int},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.resolveMyOrders,
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"number": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveOrder,
			},
			"settings": &graphql.Field{
				Type:    settingsType,
				Resolve: r.resolveSettings,
			},
			"shippingZones": &graphql.Field{
				Type:    graphql.NewList(shippingZoneType),
				Resolve: r.resolveShippingZones,
			},
			"validateCoupon": &graphql.Field{
				Type: couponValidationType,
				Args: graphql.FieldConfigArgument{
					"code":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"subtotal": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveValidateCoupon,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveRegister,
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
			"updateProfile": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":            &graphql.ArgumentConfig{Type: graphql.String},
					"phone":           &graphql.ArgumentConfig{Type: graphql.String},
					"newsletterOptIn": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: r.resolveUpdateProfile,
			},
			"createReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"rating":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":     &graphql.ArgumentConfig{Type: graphql.String},
					"body":      &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveCreateReview,
			},
			"updateReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"rating": &graphql.ArgumentConfig{Type: graphql.Int},
					"title":  &graphql.ArgumentConfig{Type: graphql.String},
					"body":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateReview,
			},
			"deleteReview": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveDeleteReview,
			},
			"quoteOrder": &graphql.Field{
				Type: quoteType,
				Args: graphql.FieldConfigArgument{
					"items":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInputType)))},
					"couponCode": &graphql.ArgumentConfig{Type: graphql.String},
					"country":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveQuoteOrder,
			},
			"placeOrder": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"items":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInputType)))},
					"couponCode":      &graphql.ArgumentConfig{Type: graphql.String},
					"email":           &graphql.ArgumentConfig{Type: graphql.String},
					"shippingAddress": &graphql.ArgumentConfig{Type: graphql.NewNonNull(addressInputType)},
					"billingAddress":  &graphql.ArgumentConfig{Type: addressInputType},
					"paymentMethod":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"notes":           &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolvePlaceOrder,
			},
			"confirmPayment": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"orderNumber": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"intentId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"signature":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveConfirmPayment,
			},
			"subscribeNewsletter": &graphql.Field{
				Type: subscriptionType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveSubscribeNewsletter,
			},
			"unsubscribeNewsletter": &graphql.Field{
				Type: subscriptionType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveUnsubscribeNewsletter,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	return schema, nil
}
