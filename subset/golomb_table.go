// SPDX-License-Identifier: MIT
// Package: subset
//
// golomb_table.go - optimal Golomb rulers, orders 1..27.
//
// Period is ruler length + 1. Rows are ascending by order; orders 5, 6, 7
// and 11 list every known optimal alternate after the canonical one.

package subset

var golombTable = [...]pattern{
	{Period: 1, Order: 1, Marks: []int{0}},
	{Period: 2, Order: 2, Marks: []int{0, 1}},
	{Period: 4, Order: 3, Marks: []int{0, 1, 3}},
	{Period: 7, Order: 4, Marks: []int{0, 1, 4, 6}},
	{Period: 12, Order: 5, Marks: []int{0, 1, 4, 9, 11}},
	{Period: 12, Order: 5, Marks: []int{0, 2, 7, 8, 11}},
	{Period: 18, Order: 6, Marks: []int{0, 1, 4, 10, 12, 17}},
	{Period: 18, Order: 6, Marks: []int{0, 1, 4, 10, 15, 17}},
	{Period: 18, Order: 6, Marks: []int{0, 1, 8, 11, 13, 17}},
	{Period: 18, Order: 6, Marks: []int{0, 1, 8, 12, 14, 17}},
	{Period: 26, Order: 7, Marks: []int{0, 1, 4, 10, 18, 23, 25}},
	{Period: 26, Order: 7, Marks: []int{0, 1, 7, 11, 20, 23, 25}},
	{Period: 26, Order: 7, Marks: []int{0, 1, 11, 16, 19, 23, 25}},
	{Period: 26, Order: 7, Marks: []int{0, 2, 3, 10, 16, 21, 25}},
	{Period: 26, Order: 7, Marks: []int{0, 2, 7, 13, 21, 22, 25}},
	{Period: 35, Order: 8, Marks: []int{0, 1, 4, 9, 15, 22, 32, 34}},
	{Period: 45, Order: 9, Marks: []int{0, 1, 5, 12, 25, 27, 35, 41, 44}},
	{Period: 56, Order: 10, Marks: []int{0, 1, 6, 10, 23, 26, 34, 41, 53, 55}},
	{Period: 73, Order: 11, Marks: []int{0, 1, 4, 13, 28, 33, 47, 54, 64, 70, 72}},
	{Period: 73, Order: 11, Marks: []int{0, 1, 9, 19, 24, 31, 52, 56, 58, 69, 72}},
	{Period: 86, Order: 12, Marks: []int{0, 2, 6, 24, 29, 40, 43, 55, 68, 75, 76, 85}},
	{Period: 107, Order: 13, Marks: []int{0, 2, 5, 25, 37, 43, 59, 70, 85, 89, 98, 99, 106}},
	{Period: 128, Order: 14, Marks: []int{0, 4, 6, 20, 35, 52, 59, 77, 78, 86, 89, 99, 122, 127}},
	{Period: 152, Order: 15, Marks: []int{0, 4, 20, 30, 57, 59, 62, 76, 100, 111, 123, 136, 144, 145, 151}},
	{Period: 178, Order: 16, Marks: []int{0, 1, 4, 11, 26, 32, 56, 68, 76, 115, 117, 134, 150, 163, 168, 177}},
	{Period: 200, Order: 17, Marks: []int{0, 5, 7, 17, 52, 56, 67, 80, 81, 100, 122, 138, 159, 165, 168, 191, 199}},
	{Period: 217, Order: 18, Marks: []int{0, 2, 10, 22, 53, 56, 82, 83, 89, 98, 130, 148, 153, 167, 188, 192, 205, 216}},
	{Period: 247, Order: 19, Marks: []int{0, 1, 6, 25, 32, 72, 100, 108, 120, 130, 153, 169, 187, 190, 204, 231, 233, 242, 246}},
	{Period: 284, Order: 20, Marks: []int{0, 1, 8, 11, 68, 77, 94, 116, 121, 156, 158, 179, 194, 208, 212, 228, 240, 253, 259, 283}},
	{Period: 334, Order: 21, Marks: []int{0, 2, 24, 56, 77, 82, 83, 95, 129, 144, 179, 186, 195, 255, 265, 285, 293, 296, 310, 329, 333}},
	{Period: 357, Order: 22, Marks: []int{0, 1, 9, 14, 43, 70, 106, 122, 124, 128, 159, 179, 204, 223, 253, 263, 270, 291, 330, 341, 353, 356}},
	{Period: 373, Order: 23, Marks: []int{0, 3, 7, 17, 61, 66, 91, 99, 114, 159, 171, 199, 200, 226, 235, 246, 277, 316, 329, 348, 350, 366, 372}},
	{Period: 426, Order: 24, Marks: []int{0, 9, 33, 37, 38, 97, 122, 129, 140, 142, 152, 191, 205, 208, 252, 278, 286, 326, 332, 353, 368, 384, 403, 425}},
	{Period: 481, Order: 25, Marks: []int{0, 12, 29, 39, 72, 91, 146, 157, 160, 161, 166, 191, 207, 214, 258, 290, 316, 354, 372, 394, 396, 431, 459, 467, 480}},
	{Period: 493, Order: 26, Marks: []int{0, 1, 33, 83, 104, 110, 124, 163, 185, 200, 203, 249, 251, 258, 314, 318, 343, 356, 386, 430, 440, 456, 464, 475, 487, 492}},
	{Period: 554, Order: 27, Marks: []int{0, 3, 15, 41, 66, 95, 97, 106, 142, 152, 220, 221, 225, 242, 295, 330, 338, 354, 382, 388, 402, 415, 486, 504, 523, 546, 553}},
}
