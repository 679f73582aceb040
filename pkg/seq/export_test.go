package seq

var Label = label
