// Package domain contains types shared by every domain sub-package: the
// sentinel errors adapters map onto transport status codes and the
// ValidationError carrying per-field messages. The aggregate runtime lives in
// domain/aggregate and the catalog model in domain/shop.
package domain
