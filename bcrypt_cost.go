//go:build !race

package miit

func passwordHashCost() int {
	return 14
}
