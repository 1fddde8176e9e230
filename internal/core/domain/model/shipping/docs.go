// Package shipping provides read models for carrier shipping methods.
//
// Methods are catalog data owned by another part of the marketplace; the
// fulfillment flow reads them to price delivery units and to derive the
// carrier adjustment used in delivery-date estimation.
package shipping
