// Package html provides the PageParser implementation for product pages.
// It locates the aroma canvas element, reads its data-rub and data-content
// attributes, the NameArrObj category table from the inline scripts and the
// community vote counter. It does no arithmetic on the values it reads.
package html
