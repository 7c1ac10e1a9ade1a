// Package order contains the Order aggregate root and its lifecycle state
// machine. An Order begins as a customer's cart (Unplaced), is frozen at
// checkout (Placed), is prepared by the restaurant (ReadyForPickup), is
// carried by a courier (InTransit), and ends Delivered. The aggregate owns
// its line items and the set of couriers that rejected it.
package order
