// Package catalog holds the read model of products as seen by order creation.
package catalog
