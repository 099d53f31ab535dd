package ranges

// Parser functions adapt each range type's Scan method to the
// (raw string) -> (any, error) shape the type-parser registry expects,
// for registration as sqlward.TypeParsers named "int4range", "int8range",
// "numrange", and "daterange" respectively.

func Int32RangeParser(raw string) (any, error) {
	var r Int32Range
	if err := r.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return r, nil
}

func Int64RangeParser(raw string) (any, error) {
	var r Int64Range
	if err := r.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return r, nil
}

func Float64RangeParser(raw string) (any, error) {
	var r Float64Range
	if err := r.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return r, nil
}

func DateRangeParser(raw string) (any, error) {
	var r DateRange
	if err := r.Scan([]byte(raw)); err != nil {
		return nil, err
	}
	return r, nil
}
