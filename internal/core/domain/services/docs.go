// Package services contains stateless domain services that coordinate
// logic spanning multiple aggregates. DeliveryMatcher builds the courier
// matching queue: it filters candidate orders by distance, annotates them
// with both delivery legs, and orders them deterministically.
package services
