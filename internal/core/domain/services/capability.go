package services

// Capability is one vendor-facing feature that can be switched on or off by
// the vendor's subscription plan and store category.
type Capability int

const (
	// CapManageMenu allows editing the vendor's menu and item availability.
	CapManageMenu Capability = iota

	// CapManageOrders allows accepting and rejecting incoming orders.
	CapManageOrders

	// CapRequestDelivery allows requesting a delivery task for an accepted order.
	CapRequestDelivery

	// CapServiceRequests allows raising support requests against the platform.
	CapServiceRequests
)

// CapabilitySet is the feature set granted to one (category, plan) pair.
type CapabilitySet map[Capability]bool

// Has reports whether the set grants the given capability.
func (c CapabilitySet) Has(cap Capability) bool {
	return c[cap]
}

// VendorCategory classifies what kind of store a vendor runs.
type VendorCategory string

const (
	CategoryRestaurant  VendorCategory = "RESTAURANT"
	CategoryGrocery     VendorCategory = "GROCERY"
	CategoryHomeKitchen VendorCategory = "HOME_KITCHEN"
)

// SubscriptionPlan is the vendor's billing tier.
type SubscriptionPlan string

const (
	PlanStarter SubscriptionPlan = "STARTER"
	PlanPro     SubscriptionPlan = "PRO"
)

type capabilityKey struct {
	category VendorCategory
	plan     SubscriptionPlan
}

// capabilityTable is the single source of truth for vendor feature gating.
// Handlers consult it once per request instead of scattering plan checks.
//
// Home kitchens on the starter plan run pickup-only: they cannot request
// platform delivery. Service requests are a Pro feature across categories.
var capabilityTable = map[capabilityKey]CapabilitySet{
	{CategoryRestaurant, PlanStarter}: {
		CapManageMenu:      true,
		CapManageOrders:    true,
		CapRequestDelivery: true,
	},
	{CategoryRestaurant, PlanPro}: {
		CapManageMenu:      true,
		CapManageOrders:    true,
		CapRequestDelivery: true,
		CapServiceRequests: true,
	},
	{CategoryGrocery, PlanStarter}: {
		CapManageMenu:      true,
		CapManageOrders:    true,
		CapRequestDelivery: true,
	},
	{CategoryGrocery, PlanPro}: {
		CapManageMenu:      true,
		CapManageOrders:    true,
		CapRequestDelivery: true,
		CapServiceRequests: true,
	},
	{CategoryHomeKitchen, PlanStarter}: {
		CapManageMenu:   true,
		CapManageOrders: true,
	},
	{CategoryHomeKitchen, PlanPro}: {
		CapManageMenu:      true,
		CapManageOrders:    true,
		CapRequestDelivery: true,
		CapServiceRequests: true,
	},
}

// CapabilitiesFor returns the feature set for a (category, plan) pair.
// Unknown pairs resolve to an empty set, denying everything.
func CapabilitiesFor(category VendorCategory, plan SubscriptionPlan) CapabilitySet {
	return capabilityTable[capabilityKey{category, plan}]
}
