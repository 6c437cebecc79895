package accept

import "testing"

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Parse(mockHeader)
	}
}

func BenchmarkIntersection(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Intersection(mockHeader, availableLanguages)
	}
}

func BenchmarkIntersectionOrdered(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		IntersectionOrdered(mockHeader, availableLanguages)
	}
}

func BenchmarkBestMatch(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		BestMatch(mockHeader, availableLanguages)
	}
}
