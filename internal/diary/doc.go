// Package diary keeps the personal side of dietlog: the meal journal, the
// active weekly diet plan, nutrition goals, and the shopping list derived
// from logged meals. Each part mirrors one durable key.
package diary
