// Package costing implementa el costo promedio ponderado como servicio de
// dominio puro: sin estado, sin IO, solo aritmética decimal.
package costing

import "github.com/shopspring/decimal"

// CostPrecision decimales a los que se redondea el costo promedio.
const CostPrecision = 2

// ApplyInbound recalcula stock y costo promedio tras una entrada.
// NuevoCosto = round((StockActual*CostoActual + Cant*CostoEntrada) / NuevoStock, 2).
// Si el stock resultante no es positivo el costo queda como estaba.
func ApplyInbound(stock, cost, qty, unitPrice decimal.Decimal) (newStock, newCost decimal.Decimal) {
	newStock = stock.Add(qty)
	if !newStock.IsPositive() {
		return newStock, cost
	}
	totalValue := stock.Mul(cost).Add(qty.Mul(unitPrice))
	newCost = totalValue.Div(newStock).Round(CostPrecision)
	return newStock, newCost
}

// RevertInbound deshace el efecto de una entrada previa de qty unidades a
// unitPrice, restando su valor del total y recalculando el promedio.
// El resultado solo es exacto si no hubo otros movimientos del artículo entre
// la entrada original y su reversión; con movimientos intermedios el costo
// recalculado es una aproximación y puede llegar a ser negativo. Se acepta
// tal cual: el libro conserva la historia real y la proyección puede
// reconstruirse si hace falta.
// Si el stock resultante no es positivo el costo se fija en 0.
func RevertInbound(stock, cost, qty, unitPrice decimal.Decimal) (newStock, newCost decimal.Decimal) {
	newStock = stock.Sub(qty)
	if !newStock.IsPositive() {
		return newStock, decimal.Zero
	}
	remaining := stock.Mul(cost).Sub(qty.Mul(unitPrice))
	newCost = remaining.Div(newStock).Round(CostPrecision)
	return newStock, newCost
}
