// Package dataset reads and writes the tabular data around a forecast.
//
// Input CSV files carry a header row with a year column, a users (or
// users_millions) column and an optional key_event column:
//
//	year,users_millions,key_event
//	2019,100,
//	2020,200,Pandemic e-commerce surge
//
// Load parses and validates such a file; Sample returns the embedded sample
// series. Example returns a small ready-made input for each interpolation
// method, and the Write* functions export explanations and forecasts as CSV.
package dataset
